package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neski321/E-Store-revamp/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const itemColumns = `id::text, user_id::text, product_id, title, unit_price, quantity, stock, discount_percentage, thumbnail, created_at`

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM cart_items
WHERE user_id = $1 AND id = $2
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, userID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) FindByProduct(ctx context.Context, userID string, productID int) (*domain.CartItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM cart_items
WHERE user_id = $1 AND product_id = $2
ORDER BY created_at ASC
LIMIT 1
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, userID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (user_id, product_id, title, unit_price, quantity, stock, discount_percentage, thumbnail)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + itemColumns + `
`
	created, err := scanItem(r.pool.QueryRow(ctx, q,
		item.UserID,
		item.ProductID,
		item.Title,
		item.UnitPrice,
		item.Quantity,
		item.Stock,
		item.DiscountPct,
		item.Thumbnail,
	))
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE user_id = $2 AND id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, userID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete is idempotent: removing a line that is already gone is a no-op.
func (r *postgresRepo) Delete(ctx context.Context, userID, itemID string) error {
	const q = `
DELETE FROM cart_items
WHERE user_id = $1 AND id = $2
`
	_, err := r.pool.Exec(ctx, q, userID, itemID)
	return err
}

func (r *postgresRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	const q = `
DELETE FROM cart_items
WHERE user_id = $1
`
	_, err := r.pool.Exec(ctx, q, userID)
	return err
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Title,
		&item.UnitPrice,
		&item.Quantity,
		&item.Stock,
		&item.DiscountPct,
		&item.Thumbnail,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
