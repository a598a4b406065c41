package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

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

const productColumns = `id, title, COALESCE(description, ''), category, brand, sku, price, discount_percentage, rating, stock, thumbnail, images, created_at, updated_at`

var sortFields = map[string]string{
	"id":         "id",
	"price":      "price",
	"rating":     "rating",
	"created_at": "created_at",
	"title":      "title",
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, int, error) {
	var where []string
	var args []interface{}

	add := func(clause string, value interface{}) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Brand != "" {
		add("brand = $%d", f.Brand)
	}
	if f.Search != "" {
		add("title ILIKE $%d", "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if f.MinRating != nil {
		add("rating >= $%d", *f.MinRating)
	}
	if f.MaxRating != nil {
		add("rating <= $%d", *f.MaxRating)
	}
	if f.InStock {
		where = append(where, "stock > 0")
	}
	if f.HasDiscount {
		where = append(where, "discount_percentage > 0")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQ := "SELECT COUNT(*) FROM products " + whereSQL
	if err := r.pool.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		r.logger.Printf("product repo: count error=%v", err)
		return nil, 0, err
	}

	sortField, ok := sortFields[f.Sort]
	if !ok {
		sortField = "id"
	}
	dir := "DESC"
	if strings.EqualFold(f.Order, "asc") {
		dir = "ASC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 {
		pageSize = 12
	}
	args = append(args, pageSize, (page-1)*pageSize)

	listQ := fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		productColumns, whereSQL, sortField, dir, len(args)-1, len(args),
	)
	rows, err := r.pool.Query(ctx, listQ, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	r.logger.Printf("product repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, title, description, category, brand, sku, price, discount_percentage, rating, stock, thumbnail, images)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + productColumns + `
`
	created, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.Category, p.Brand, p.SKU,
		p.Price, p.DiscountPct, p.Rating, p.Stock, p.Thumbnail, p.Images,
	))
	if err != nil {
		r.logger.Printf("product repo: create id=%d error=%v", p.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d title=%q", created.ID, created.Title)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = $2, description = $3, category = $4, brand = $5, sku = $6,
    price = $7, discount_percentage = $8, stock = $9, thumbnail = $10,
    images = $11, updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	updated, err := scanProduct(r.pool.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.Category, p.Brand, p.SKU,
		p.Price, p.DiscountPct, p.Stock, p.Thumbnail, p.Images,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
}

func (r *postgresRepo) Brands(ctx context.Context, category string) ([]string, error) {
	if category != "" {
		return r.distinct(ctx, `SELECT DISTINCT brand FROM products WHERE category = $1 ORDER BY brand`, category)
	}
	return r.distinct(ctx, `SELECT DISTINCT brand FROM products ORDER BY brand`)
}

func (r *postgresRepo) SetRating(ctx context.Context, id int, rating float64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET rating = $1, updated_at = now() WHERE id = $2`, rating, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) distinct(ctx context.Context, q string, args ...interface{}) ([]string, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Brand,
		&p.SKU,
		&p.Price,
		&p.DiscountPct,
		&p.Rating,
		&p.Stock,
		&p.Thumbnail,
		&p.Images,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
