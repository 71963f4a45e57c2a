package customer

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
)

// Repository persists and fetches customers.
type Repository interface {
	Insert(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Customer, error)
	Remove(ctx context.Context, id int64) error
}
