package user

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
)

// Repository persists login accounts. Usernames are unique; a duplicate
// insert surfaces as domain.ErrConflict.
type Repository interface {
	Insert(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Find(ctx context.Context, filter sqlgen.Fields) ([]domain.User, error)
	Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.User, error)
	RemoveByID(ctx context.Context, id int64) error
	RemoveByUsername(ctx context.Context, username string) error
}
