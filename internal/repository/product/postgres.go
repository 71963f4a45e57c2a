package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"orderdesk/internal/db"
	"orderdesk/internal/domain"
	"orderdesk/internal/sqlgen"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var columns = sqlgen.Mapper{
	"priceCents": "price_cents",
	"variantSku": "variant_sku",
	"imageSrc":   "image_source",
}

const returning = `id, name, published, description, price_cents, variant_sku, image_source`

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

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, published, description, price_cents, variant_sku, image_source)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + returning
	return r.scan(r.q.QueryRow(ctx, q, p.Name, p.Published, p.Description, p.PriceCents, p.VariantSKU, p.ImageSrc))
}

func (r *postgresRepo) Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Product, error) {
	query := `SELECT ` + returning + ` FROM products`
	where, args := sqlgen.BuildFilter(filter, columns)
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Published, &p.Description, &p.PriceCents, &p.VariantSKU, &p.ImageSrc); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `SELECT ` + returning + ` FROM products WHERE id = $1`
	return r.scan(r.q.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Product, error) {
	set, args, err := sqlgen.BuildSet(fields, columns)
	if err != nil {
		return nil, err
	}
	var found int64
	if err := r.q.QueryRow(ctx, `SELECT id FROM products WHERE id = $1`, id).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, returning)
	return r.scan(r.q.QueryRow(ctx, query, append(args, id)...))
}

func (r *postgresRepo) Remove(ctx context.Context, id int64) error {
	const q = `DELETE FROM products WHERE id = $1 RETURNING id`
	var deleted int64
	if err := r.q.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Published, &p.Description, &p.PriceCents, &p.VariantSKU, &p.ImageSrc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrConflict
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	return &p, nil
}
