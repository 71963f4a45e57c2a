package address

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/db"
	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var columns = sqlgen.Mapper{
	"addressType": "address_type",
	"postalCode":  "postal_code",
	"customerId":  "customer_id",
}

const returning = `id, country, state, city, street, address_type, postal_code, customer_id`

type postgresRepo struct {
	q db.Querier
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(q db.Querier) Repository {
	return &postgresRepo{q: q}
}

func (r *postgresRepo) Insert(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO shipping_addresses (country, state, city, street, address_type, postal_code, customer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + returning
	return scan(r.q.QueryRow(ctx, q, a.Country, a.State, a.City, a.Street, a.AddressType, a.PostalCode, a.CustomerID))
}

func (r *postgresRepo) FindMatch(ctx context.Context, candidate domain.Address) (*domain.Address, error) {
	const q = `
SELECT ` + returning + `
FROM shipping_addresses
WHERE country = $1 AND state = $2 AND city = $3 AND street = $4
  AND address_type = $5 AND postal_code = $6 AND customer_id = $7
LIMIT 1
`
	return scan(r.q.QueryRow(ctx, q,
		candidate.Country,
		candidate.State,
		candidate.City,
		candidate.Street,
		candidate.AddressType,
		candidate.PostalCode,
		candidate.CustomerID,
	))
}

func (r *postgresRepo) Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Address, error) {
	query := `SELECT ` + returning + ` FROM shipping_addresses`
	where, args := sqlgen.BuildFilter(filter, columns)
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Country, &a.State, &a.City, &a.Street, &a.AddressType, &a.PostalCode, &a.CustomerID); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const q = `SELECT ` + returning + ` FROM shipping_addresses WHERE id = $1`
	return scan(r.q.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Address, error) {
	set, args, err := sqlgen.BuildSet(fields, columns)
	if err != nil {
		return nil, err
	}
	var found int64
	if err := r.q.QueryRow(ctx, `SELECT id FROM shipping_addresses WHERE id = $1`, id).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	query := fmt.Sprintf(`UPDATE shipping_addresses SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, returning)
	return scan(r.q.QueryRow(ctx, query, append(args, id)...))
}

func (r *postgresRepo) Remove(ctx context.Context, id int64) error {
	const q = `DELETE FROM shipping_addresses WHERE id = $1 RETURNING id`
	var deleted int64
	if err := r.q.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func scan(row pgx.Row) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.Country, &a.State, &a.City, &a.Street, &a.AddressType, &a.PostalCode, &a.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &a, nil
}
