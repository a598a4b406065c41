package order

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Repository interface {
	// Create writes a new order. If the idempotency key already exists the
	// previously created order is returned with created=false.
	Create(ctx context.Context, o domain.Order) (out *domain.Order, created bool, err error)
	// Finalize clears the user's cart and flips the order from
	// pending_cart_clear to confirmed in one transaction.
	Finalize(ctx context.Context, userID, orderID string) error
	GetByID(ctx context.Context, userID, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
}
