package product

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

// ListFilter mirrors the catalog query parameters. Nil pointer fields are
// not applied.
type ListFilter struct {
	Category    string
	Brand       string
	Search      string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	MaxRating   *float64
	InStock     bool
	HasDiscount bool
	Sort        string
	Order       string
	Page        int
	PageSize    int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context, category string) ([]string, error)
	SetRating(ctx context.Context, id int, rating float64) error
}
