package address

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/domain"
)

type stubAddressRepo struct {
	nextID  int64
	rows    []domain.Address
	findErr error
	insErr  error
}

func (s *stubAddressRepo) Insert(_ context.Context, a domain.Address) (*domain.Address, error) {
	if s.insErr != nil {
		return nil, s.insErr
	}
	s.nextID++
	a.ID = s.nextID
	s.rows = append(s.rows, a)
	return &a, nil
}

func (s *stubAddressRepo) FindMatch(_ context.Context, candidate domain.Address) (*domain.Address, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, row := range s.rows {
		if row.SameLocation(candidate) {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func candidate() domain.Address {
	return domain.Address{
		Country:     "US",
		State:       "CA",
		City:        "Demoville",
		Street:      "100 Demo Street",
		AddressType: "residential",
		PostalCode:  "90001",
		CustomerID:  3,
	}
}

func TestRegister_IdempotentByValue(t *testing.T) {
	repo := &stubAddressRepo{}
	svc := &Service{repo: repo}

	first, err := svc.Register(context.Background(), candidate())
	if err != nil {
		t.Fatalf("first Register: %v", err)
	}
	second, err := svc.Register(context.Background(), candidate())
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same candidate resolved to different rows: %d vs %d", first.ID, second.ID)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("duplicate row inserted, rows=%d", len(repo.rows))
	}
}

func TestRegister_DifferingFieldInsertsNewRow(t *testing.T) {
	repo := &stubAddressRepo{}
	svc := &Service{repo: repo}

	first, err := svc.Register(context.Background(), candidate())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	other := candidate()
	other.PostalCode = "90002"
	second, err := svc.Register(context.Background(), other)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("differing postalCode should create a distinct row")
	}
	if len(repo.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(repo.rows))
	}
}

func TestRegister_LookupErrorPropagates(t *testing.T) {
	lookupErr := errors.New("db down")
	repo := &stubAddressRepo{findErr: lookupErr}
	svc := &Service{repo: repo}

	if _, err := svc.Register(context.Background(), candidate()); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("insert ran despite lookup failure")
	}
}
