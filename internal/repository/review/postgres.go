package review

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

const reviewColumns = `id::text, product_id, user_id::text, reviewer_name, rating, comment, status, created_at`

func (r *postgresRepo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, user_id, reviewer_name, rating, comment, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + reviewColumns + `
`
	status := rv.Status
	if status == "" {
		status = domain.ReviewPending
	}
	return scanReview(r.pool.QueryRow(ctx, q, rv.ProductID, rv.UserID, rv.ReviewerName, rv.Rating, rv.Comment, status))
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int, status string) ([]domain.Review, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE product_id = $1 AND status = $2
ORDER BY created_at DESC
`
	return r.list(ctx, q, productID, status)
}

func (r *postgresRepo) ListByStatus(ctx context.Context, status string) ([]domain.Review, error) {
	const q = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE status = $1
ORDER BY created_at ASC
`
	return r.list(ctx, q, status)
}

func (r *postgresRepo) SetStatus(ctx context.Context, reviewID, status string) (*domain.Review, error) {
	const q = `
UPDATE reviews
SET status = $1
WHERE id = $2
RETURNING ` + reviewColumns + `
`
	rv, err := scanReview(r.pool.QueryRow(ctx, q, status, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *postgresRepo) AverageApprovedRating(ctx context.Context, productID int) (float64, int, error) {
	const q = `
SELECT COALESCE(AVG(rating), 0), COUNT(*)
FROM reviews
WHERE product_id = $1 AND status = $2
`
	var avg float64
	var count int
	if err := r.pool.QueryRow(ctx, q, productID, domain.ReviewApproved).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	if err := row.Scan(
		&rv.ID,
		&rv.ProductID,
		&rv.UserID,
		&rv.ReviewerName,
		&rv.Rating,
		&rv.Comment,
		&rv.Status,
		&rv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rv, nil
}
