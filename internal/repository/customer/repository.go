package customer

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	UpdateAddresses(ctx context.Context, id string, billing, shipping *domain.Address) (*domain.Customer, error)
}
