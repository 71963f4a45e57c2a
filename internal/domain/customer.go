package domain

import "time"

// Customer is an identity record owned by the store. Customers are never
// merged or deduplicated; repeated checkouts with inline customer info create
// a new row each time.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
