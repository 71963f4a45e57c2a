package user

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
	"firstName":    "first_name",
	"lastName":     "last_name",
	"customerId":   "customer_id",
	"isAdmin":      "is_admin",
	"passwordHash": "password_hash",
}

const returning = `id, username, password_hash, first_name, last_name, email, phone, customer_id, is_admin`

type postgresRepo struct {
	q db.Querier
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(q db.Querier) Repository {
	return &postgresRepo{q: q}
}

func (r *postgresRepo) Insert(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, password_hash, first_name, last_name, email, phone, customer_id, is_admin)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + returning
	return scan(r.q.QueryRow(ctx, q, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email, u.Phone, u.CustomerID, u.IsAdmin))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + returning + ` FROM users WHERE id = $1`
	return scan(r.q.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT ` + returning + ` FROM users WHERE username = $1`
	return scan(r.q.QueryRow(ctx, q, username))
}

func (r *postgresRepo) Find(ctx context.Context, filter sqlgen.Fields) ([]domain.User, error) {
	query := `SELECT ` + returning + ` FROM users`
	where, args := sqlgen.BuildFilter(filter, columns)
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CustomerID, &u.IsAdmin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id int64, fields sqlgen.Fields) (*domain.User, error) {
	set, args, err := sqlgen.BuildSet(fields, columns)
	if err != nil {
		return nil, err
	}
	var found int64
	if err := r.q.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, id).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`, set, len(args)+1, returning)
	return scan(r.q.QueryRow(ctx, query, append(args, id)...))
}

func (r *postgresRepo) RemoveByID(ctx context.Context, id int64) error {
	return r.remove(ctx, `DELETE FROM users WHERE id = $1 RETURNING id`, id)
}

func (r *postgresRepo) RemoveByUsername(ctx context.Context, username string) error {
	return r.remove(ctx, `DELETE FROM users WHERE username = $1 RETURNING id`, username)
}

func (r *postgresRepo) remove(ctx context.Context, q string, arg any) error {
	var deleted int64
	if err := r.q.QueryRow(ctx, q, arg).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func scan(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.CustomerID, &u.IsAdmin)
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
	return &u, nil
}
