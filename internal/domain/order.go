package domain

import "time"

// Delivery status values stored on orders. The column carries no validation
// beyond the caller's contract.
const (
	StatusNotDelivered = "notDelivered"
	StatusDelivered    = "delivered"
)

// Order ties a customer and a shipping address to a set of line items.
// CreatedAt is write-once: updates touching it fail with ErrImmutableField.
type Order struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	AddressID  int64     `json:"addressId"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"deliveredStatus"`
}

// OrderItem is a line item owned by exactly one order. Every item created in
// the same intake call shares the order's creation timestamp.
type OrderItem struct {
	ItemID    int64     `json:"itemId"`
	OrderID   int64     `json:"orderId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderWithItems is the aggregate returned by order intake: the order row plus
// its line items keyed by line-item id.
type OrderWithItems struct {
	Order
	Items map[int64]OrderItem `json:"items"`
}
