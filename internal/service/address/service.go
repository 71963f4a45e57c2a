package address

import (
	"context"
	"errors"

	"orderdesk/internal/domain"
)

// Service registers shipping addresses idempotently by value: a candidate
// matching an existing row on all seven identifying fields resolves to that
// row instead of inserting a duplicate.
type Service struct {
	repo addressRepo
}

type addressRepo interface {
	Insert(ctx context.Context, a domain.Address) (*domain.Address, error)
	FindMatch(ctx context.Context, candidate domain.Address) (*domain.Address, error)
}

func New(repo addressRepo) *Service {
	return &Service{repo: repo}
}

// Register resolves or creates the address for the candidate fields.
//
// The lookup and the insert are separate statements: two concurrent
// registrations of the same candidate can both miss the lookup and both
// insert. That race is accepted; callers treat either row as valid.
func (s *Service) Register(ctx context.Context, candidate domain.Address) (*domain.Address, error) {
	existing, err := s.repo.FindMatch(ctx, candidate)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.repo.Insert(ctx, candidate)
}
