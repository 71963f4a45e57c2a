package customer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"orderdesk/internal/db"
	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// columns maps application field names to customer columns. Fields whose
// storage name matches (email, phone) rely on the identity fallback.
var columns = sqlgen.Mapper{
	"firstName": "first_name",
	"lastName":  "last_name",
	"createdAt": "created_at",
}

const returning = `id, first_name, last_name, email, phone, created_at`

type postgresRepo struct {
	q      db.Querier
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(q db.Querier, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{q: q, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	const q = `
INSERT INTO customers (first_name, last_name, email, phone, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + returning
	return r.scan(r.q.QueryRow(ctx, q, c.FirstName, c.LastName, c.Email, c.Phone, createdAt))
}

func (r *postgresRepo) Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Customer, error) {
	query := `SELECT ` + returning + ` FROM customers`
	where, args := sqlgen.BuildFilter(filter, columns)
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `SELECT ` + returning + ` FROM customers WHERE id = $1`
	return r.scan(r.q.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Customer, error) {
	// Build first: an empty field-set must fail without touching storage.
	set, args, err := sqlgen.BuildSet(fields, columns)
	if err != nil {
		return nil, err
	}
	if err := exists(ctx, r.q, id); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`UPDATE customers SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, returning)
	return r.scan(r.q.QueryRow(ctx, query, append(args, id)...))
}

func (r *postgresRepo) Remove(ctx context.Context, id int64) error {
	const q = `DELETE FROM customers WHERE id = $1 RETURNING id`
	var deleted int64
	if err := r.q.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// exists resolves the missing-id/no-op ambiguity of a zero-row UPDATE by
// checking the row up front.
func exists(ctx context.Context, q db.Querier, id int64) error {
	var found int64
	err := q.QueryRow(ctx, `SELECT id FROM customers WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrConflict
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
