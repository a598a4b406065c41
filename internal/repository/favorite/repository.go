package favorite

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Repository interface {
	// Put is idempotent: marking a product twice keeps one row.
	Put(ctx context.Context, userID string, productID int) error
	Delete(ctx context.Context, userID string, productID int) error
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
}
