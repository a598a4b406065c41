package review

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int, status string) ([]domain.Review, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Review, error)
	SetStatus(ctx context.Context, reviewID, status string) (*domain.Review, error)
	// AverageApprovedRating returns the mean rating of approved reviews for
	// the product, and how many there are.
	AverageApprovedRating(ctx context.Context, productID int) (float64, int, error)
}
