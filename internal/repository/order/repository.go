package order

import (
	"context"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
)

// Repository persists orders together with their line items. Line items are
// only ever created as children of an existing order.
type Repository interface {
	Insert(ctx context.Context, customerID, addressID int64, createdAt time.Time, status string) (*domain.Order, error)
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Update rejects attempts to change createdAt with domain.ErrImmutableField.
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Order, error)
	Remove(ctx context.Context, id int64) error

	// InsertItem verifies the order exists before writing the child row.
	InsertItem(ctx context.Context, orderID, productID int64, quantity int, createdAt time.Time) (*domain.OrderItem, error)
	FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	RemoveItem(ctx context.Context, id int64) error
}
