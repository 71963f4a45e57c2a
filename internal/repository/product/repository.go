package product

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
)

// Repository persists and fetches catalog products.
type Repository interface {
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Product, error)
	Remove(ctx context.Context, id int64) error
}
