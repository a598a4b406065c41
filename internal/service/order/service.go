package order

import (
	"context"

	"github.com/neski321/E-Store-revamp/internal/domain"
	orderrepo "github.com/neski321/E-Store-revamp/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's order history, newest first.
func (s *Service) List(ctx context.Context, sess domain.Session) ([]domain.Order, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	orders, err := s.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Get returns one order for tracking; ownership is enforced by scoping the
// lookup to the session's user.
func (s *Service) Get(ctx context.Context, sess domain.Session, orderID string) (*domain.Order, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	return s.repo.GetByID(ctx, sess.UserID, orderID)
}

// UpdateStatus is the fulfillment hook: admins move orders through
// processing/shipped/delivered/cancelled.
func (s *Service) UpdateStatus(ctx context.Context, sess domain.Session, orderID, status string) (*domain.Order, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidOrderStatus(status) {
		return nil, &domain.ValidationError{Problems: []string{"unknown order status " + status}}
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
