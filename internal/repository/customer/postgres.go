package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neski321/E-Store-revamp/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const customerColumns = `id::text, email, password_hash, first_name, last_name, role, billing, shipping, created_at`

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (email, password_hash, first_name, last_name, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + customerColumns + `
`
	role := c.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	created, err := scanCustomer(r.pool.QueryRow(ctx, q, c.Email, c.PasswordHash, c.FirstName, c.LastName, role))
	if err != nil {
		r.logger.Printf("customer repo: create email=%s error=%v", c.Email, err)
		return nil, err
	}
	r.logger.Printf("customer repo: created id=%s email=%s", created.ID, created.Email)
	return created, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.get(ctx, q, id)
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.get(ctx, q, email)
}

func (r *postgresRepo) UpdateAddresses(ctx context.Context, id string, billing, shipping *domain.Address) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET billing = COALESCE($2, billing),
    shipping = COALESCE($3, shipping)
WHERE id = $1
RETURNING ` + customerColumns + `
`
	updated, err := scanCustomer(r.pool.QueryRow(ctx, q, id, billing, shipping))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) get(ctx context.Context, q string, arg interface{}) (*domain.Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(
		&c.ID,
		&c.Email,
		&c.PasswordHash,
		&c.FirstName,
		&c.LastName,
		&c.Role,
		&c.Billing,
		&c.Shipping,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
