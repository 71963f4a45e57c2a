package domain

// User is a login account linked to a customer record.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	CustomerID   int64  `json:"customerId"`
	IsAdmin      bool   `json:"isAdmin"`
}
