package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	VariantSKU  string
	ImageSrc    string
}

// Apply inserts basic seed data for manual testing. Reruns are no-ops: rows
// are looked up by SKU or email before inserting.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Demo T-Shirt",
			Description: "Soft cotton tee for demo purposes",
			PriceCents:  1999,
			VariantSKU:  "SKU-DEMO-TSHIRT",
			ImageSrc:    "https://example.com/img/tshirt.jpg",
		},
		{
			Name:        "Demo Mug",
			Description: "Ceramic mug with demo logo",
			PriceCents:  1299,
			VariantSKU:  "SKU-DEMO-MUG",
			ImageSrc:    "https://example.com/img/mug.jpg",
		},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.VariantSKU, err)
		}
	}

	customerID, err := ensureCustomer(ctx, pool, "Demo", "Customer", "demo@example.com", "+1-555-0100")
	if err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}

	if err := ensureAddress(ctx, pool, customerID); err != nil {
		return fmt.Errorf("ensure address: %w", err)
	}

	return nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM products WHERE variant_sku = $1`, p.VariantSKU).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO products (name, published, description, price_cents, variant_sku, image_source)
VALUES ($1, TRUE, $2, $3, $4, $5)
`, p.Name, p.Description, p.PriceCents, p.VariantSKU, p.ImageSrc)
	return err
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, first, last, email, phone string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM customers WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = pool.QueryRow(ctx, `
INSERT INTO customers (first_name, last_name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING id
`, first, last, email, phone).Scan(&id)
	return id, err
}

func ensureAddress(ctx context.Context, pool *pgxpool.Pool, customerID int64) error {
	var id int64
	err := pool.QueryRow(ctx, `
SELECT id FROM shipping_addresses
WHERE street = $1 AND customer_id = $2
`, "100 Demo Street", customerID).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO shipping_addresses (country, state, city, street, address_type, postal_code, customer_id)
VALUES ('US', 'CA', 'Demoville', '100 Demo Street', 'residential', '90001', $1)
`, customerID)
	return err
}
