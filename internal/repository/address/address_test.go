package address

import (
	"context"
	"errors"
	"os"
	"testing"

	"orderdesk/internal/domain"
	"orderdesk/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_FindMatch(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	customerID := seedCustomer(ctx, t, pool)
	repo := NewPostgres(pool)

	candidate := domain.Address{
		Country:     "US",
		State:       "CA",
		City:        "Demoville",
		Street:      "1 Demo St",
		AddressType: "home",
		PostalCode:  "94000",
		CustomerID:  customerID,
	}

	if _, err := repo.FindMatch(ctx, candidate); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before insert, got %v", err)
	}

	created, err := repo.Insert(ctx, candidate)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	matched, err := repo.FindMatch(ctx, candidate)
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if matched.ID != created.ID {
		t.Fatalf("matched id %d, want %d", matched.ID, created.ID)
	}

	// Any single differing field breaks the match.
	variant := candidate
	variant.PostalCode = "94001"
	if _, err := repo.FindMatch(ctx, variant); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for variant, got %v", err)
	}
}

func TestPostgres_RemoveUnknown(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	if err := repo.Remove(ctx, 777); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func seedCustomer(ctx context.Context, t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO customers (first_name, last_name, email) VALUES ('Ada', 'Lovelace', 'ada@example.com') RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return id
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_line_items, orders, users, shipping_addresses, products, customers RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
