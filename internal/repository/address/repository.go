package address

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
)

// Repository persists and fetches shipping addresses.
type Repository interface {
	Insert(ctx context.Context, a domain.Address) (*domain.Address, error)
	// FindMatch looks up a row agreeing with the candidate on every
	// identifying field. Returns domain.ErrNotFound when none exists.
	FindMatch(ctx context.Context, candidate domain.Address) (*domain.Address, error)
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Address, error)
	Remove(ctx context.Context, id int64) error
}
