package domain

// Address is a shipping destination owned by a customer. The tuple of all
// seven identifying fields (everything but ID) is unique by dedup policy:
// registering an identical candidate resolves to the existing row.
type Address struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	Street      string `json:"street"`
	AddressType string `json:"addressType"`
	PostalCode  string `json:"postalCode"`
	CustomerID  int64  `json:"customerId"`
}

// SameLocation reports whether two addresses agree on every identifying field.
func (a Address) SameLocation(b Address) bool {
	return a.Country == b.Country &&
		a.State == b.State &&
		a.City == b.City &&
		a.Street == b.Street &&
		a.AddressType == b.AddressType &&
		a.PostalCode == b.PostalCode &&
		a.CustomerID == b.CustomerID
}
