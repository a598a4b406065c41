package order

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const orderColumns = `id::text, user_id::text, items, billing, shipping, subtotal, discount_total, tax, total, status, payment_ref, idempotency_key, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, bool, error) {
	const q = `
INSERT INTO orders (user_id, items, billing, shipping, subtotal, discount_total, tax, total, status, payment_ref, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + orderColumns + `
`
	created, err := scanOrder(r.pool.QueryRow(ctx, q,
		o.UserID,
		o.Items,
		o.Billing,
		o.Shipping,
		o.Subtotal,
		o.DiscountTotal,
		o.Tax,
		o.Total,
		o.Status,
		o.PaymentRef,
		o.IdempotencyKey,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: the idempotency key has already produced an order; the
		// retry must observe that order, not create a second one.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			existing, lookupErr := r.getByIdempotencyKey(ctx, o.UserID, o.IdempotencyKey)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			r.logger.Printf("order repo: idempotency key reuse user=%s order=%s", o.UserID, existing.ID)
			return existing, false, nil
		}
		r.logger.Printf("order repo: create user=%s error=%v", o.UserID, err)
		return nil, false, err
	}
	r.logger.Printf("order repo: created order=%s user=%s total=%.2f", created.ID, created.UserID, created.Total)
	return created, true, nil
}

func (r *postgresRepo) Finalize(ctx context.Context, userID, orderID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2 AND user_id = $3 AND status = $4
`, domain.OrderConfirmed, orderID, userID, domain.OrderPendingCartClear)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND id = $2`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, userID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2
RETURNING ` + orderColumns + `
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, status, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	r.logger.Printf("order repo: order=%s status=%s", o.ID, o.Status)
	return o, nil
}

func (r *postgresRepo) getByIdempotencyKey(ctx context.Context, userID, key string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND idempotency_key = $2`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, userID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Items,
		&o.Billing,
		&o.Shipping,
		&o.Subtotal,
		&o.DiscountTotal,
		&o.Tax,
		&o.Total,
		&o.Status,
		&o.PaymentRef,
		&o.IdempotencyKey,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
