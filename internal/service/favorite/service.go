package favorite

import (
	"context"
	"errors"

	"github.com/neski321/E-Store-revamp/internal/domain"
	favoriterepo "github.com/neski321/E-Store-revamp/internal/repository/favorite"
)

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	repo     favoriterepo.Repository
	products productRepo
}

func New(repo favoriterepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(ctx context.Context, sess domain.Session, productID int) error {
	if sess.Anonymous {
		return domain.ErrAccountRequired
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.Put(ctx, sess.UserID, productID)
}

func (s *Service) Remove(ctx context.Context, sess domain.Session, productID int) error {
	if sess.Anonymous {
		return domain.ErrAccountRequired
	}
	return s.repo.Delete(ctx, sess.UserID, productID)
}

// List resolves the favorite set against the live catalog. Products that
// have been deleted since being favorited are skipped, not errors.
func (s *Service) List(ctx context.Context, sess domain.Session) ([]domain.Product, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	favs, err := s.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(favs))
	for _, f := range favs {
		p, err := s.products.GetByID(ctx, f.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
