package cart

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	GetByID(ctx context.Context, userID, itemID string) (*domain.CartItem, error)
	FindByProduct(ctx context.Context, userID string, productID int) (*domain.CartItem, error)
	Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	Delete(ctx context.Context, userID, itemID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}
