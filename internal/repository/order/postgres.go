package order

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
)

var columns = sqlgen.Mapper{
	"customerId":      "customer_id",
	"addressId":       "address_id",
	"createdAt":       "created_at",
	"deliveredStatus": "delivered_status",
}

const (
	returning     = `id, customer_id, address_id, created_at, delivered_status`
	itemReturning = `id, order_id, product_id, quantity, created_at`
)

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

func (r *postgresRepo) Insert(ctx context.Context, customerID, addressID int64, createdAt time.Time, status string) (*domain.Order, error) {
	if status == "" {
		status = domain.StatusNotDelivered
	}
	const q = `
INSERT INTO orders (customer_id, address_id, created_at, delivered_status)
VALUES ($1, $2, $3, $4)
RETURNING ` + returning
	return scanOrder(r.q.QueryRow(ctx, q, customerID, addressID, createdAt, status))
}

func (r *postgresRepo) Find(ctx context.Context, filter sqlgen.Fields) ([]domain.Order, error) {
	query := `SELECT ` + returning + ` FROM orders`
	where, args := sqlgen.BuildFilter(filter, columns)
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.AddressID, &o.CreatedAt, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `SELECT ` + returning + ` FROM orders WHERE id = $1`
	return scanOrder(r.q.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.Order, error) {
	set, args, err := sqlgen.BuildSet(fields, columns)
	if err != nil {
		return nil, err
	}
	if fields.Has("createdAt") {
		// created_at is write-once.
		return nil, domain.ErrImmutableField
	}
	if err := r.exists(ctx, id); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, returning)
	return scanOrder(r.q.QueryRow(ctx, query, append(args, id)...))
}

func (r *postgresRepo) Remove(ctx context.Context, id int64) error {
	const q = `DELETE FROM orders WHERE id = $1 RETURNING id`
	var deleted int64
	if err := r.q.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *postgresRepo) InsertItem(ctx context.Context, orderID, productID int64, quantity int, createdAt time.Time) (*domain.OrderItem, error) {
	if err := r.exists(ctx, orderID); err != nil {
		return nil, err
	}
	const q = `
INSERT INTO order_line_items (order_id, product_id, quantity, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + itemReturning
	var item domain.OrderItem
	err := r.q.QueryRow(ctx, q, orderID, productID, quantity, createdAt).Scan(
		&item.ItemID,
		&item.OrderID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("order repo: insert item order=%d product=%d err=%v", orderID, productID, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) FindItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `SELECT ` + itemReturning + ` FROM order_line_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) RemoveItem(ctx context.Context, id int64) error {
	const q = `DELETE FROM order_line_items WHERE id = $1 RETURNING id`
	var deleted int64
	if err := r.q.QueryRow(ctx, q, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *postgresRepo) exists(ctx context.Context, id int64) error {
	var found int64
	err := r.q.QueryRow(ctx, `SELECT id FROM orders WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.AddressID, &o.CreatedAt, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
