package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	GetByID(ctx context.Context, userID, itemID string) (*domain.CartItem, error)
	FindByProduct(ctx context.Context, userID string, productID int) (*domain.CartItem, error)
	Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	Delete(ctx context.Context, userID, itemID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}

// Service owns the per-user cart collection. The add-to-cart call sites in
// the original disagreed on whether a product already in the cart gets a
// second line or a quantity bump; mergeOnAdd makes that an explicit policy,
// defaulting to merge.
type Service struct {
	repo       cartRepo
	products   productRepo
	mergeOnAdd bool
	logger     *log.Logger
}

type Option func(*Service)

// WithoutMerge makes Add always insert a fresh line item, reproducing the
// original duplicate-line behavior.
func WithoutMerge() Option {
	return func(s *Service) { s.mergeOnAdd = false }
}

func New(repo cartRepo, products productRepo, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Service{repo: repo, products: products, mergeOnAdd: true, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Load(ctx context.Context, sess domain.Session) ([]domain.CartItem, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	items, err := s.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, storageErr("load cart", err)
	}
	return items, nil
}

// Add puts a product into the cart, snapshotting price, stock ceiling and
// discount from the catalog. With merge enabled an existing line for the
// same product has its quantity incremented (clamped) instead.
func (s *Service) Add(ctx context.Context, sess domain.Session, productID, quantity int) (*domain.CartItem, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("load product", err)
	}

	if s.mergeOnAdd {
		existing, err := s.repo.FindByProduct(ctx, sess.UserID, productID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, storageErr("find cart line", err)
		}
		if err == nil {
			merged := existing.ClampQuantity(existing.Quantity + quantity)
			if merged != existing.Quantity {
				if err := s.repo.UpdateQuantity(ctx, sess.UserID, existing.ID, merged); err != nil {
					return nil, storageErr("merge cart line", err)
				}
			}
			existing.Quantity = merged
			s.logger.Printf("cart: merged product=%d user=%s qty=%d", productID, sess.UserID, merged)
			return existing, nil
		}
	}

	item := domain.CartItem{
		UserID:      sess.UserID,
		ProductID:   product.ID,
		Title:       product.Title,
		UnitPrice:   product.Price,
		Stock:       product.Stock,
		DiscountPct: product.DiscountPct,
		Thumbnail:   product.Thumbnail,
	}
	item.Quantity = item.ClampQuantity(quantity)

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, storageErr("insert cart line", err)
	}
	s.logger.Printf("cart: added product=%d user=%s qty=%d", productID, sess.UserID, created.Quantity)
	return created, nil
}

// SetQuantity clamps the requested quantity to [1, stock ceiling] and
// writes only when the clamped value differs from what is stored.
func (s *Service) SetQuantity(ctx context.Context, sess domain.Session, itemID string, quantity int) (*domain.CartItem, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	item, err := s.repo.GetByID(ctx, sess.UserID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("load cart line", err)
	}

	clamped := item.ClampQuantity(quantity)
	if clamped == item.Quantity {
		return item, nil
	}
	if err := s.repo.UpdateQuantity(ctx, sess.UserID, itemID, clamped); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("update quantity", err)
	}
	item.Quantity = clamped
	return item, nil
}

// Remove deletes one line item. Removing a line that is already gone is a
// no-op, not an error.
func (s *Service) Remove(ctx context.Context, sess domain.Session, itemID string) error {
	if sess.Anonymous {
		return domain.ErrAccountRequired
	}
	if err := s.repo.Delete(ctx, sess.UserID, itemID); err != nil {
		return storageErr("remove cart line", err)
	}
	return nil
}

func (s *Service) Clear(ctx context.Context, sess domain.Session) error {
	if sess.Anonymous {
		return domain.ErrAccountRequired
	}
	if err := s.repo.DeleteAllByUser(ctx, sess.UserID); err != nil {
		return storageErr("clear cart", err)
	}
	s.logger.Printf("cart: cleared user=%s", sess.UserID)
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorageUnavailable, err)
}
