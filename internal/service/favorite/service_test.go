package favorite

import (
	"context"
	"errors"
	"testing"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type stubFavoriteRepo struct {
	favs map[int]bool
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favs: make(map[int]bool)}
}

func (r *stubFavoriteRepo) Put(_ context.Context, _ string, productID int) error {
	r.favs[productID] = true
	return nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, _ string, productID int) error {
	delete(r.favs, productID)
	return nil
}

func (r *stubFavoriteRepo) ListByUser(_ context.Context, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	for id := range r.favs {
		out = append(out, domain.Favorite{UserID: userID, ProductID: id})
	}
	return out, nil
}

type stubProducts struct {
	products map[int]*domain.Product
}

func (p *stubProducts) GetByID(_ context.Context, id int) (*domain.Product, error) {
	product, ok := p.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func shopper() domain.Session {
	return domain.Session{UserID: "user-1", Role: domain.RoleCustomer}
}

func TestAdd_UnknownProduct(t *testing.T) {
	svc := New(newStubFavoriteRepo(), &stubProducts{products: map[int]*domain.Product{}})
	if err := svc.Add(context.Background(), shopper(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAdd_AnonymousRejected(t *testing.T) {
	svc := New(newStubFavoriteRepo(), &stubProducts{})
	if err := svc.Add(context.Background(), domain.AnonymousSession(), 1); !errors.Is(err, domain.ErrAccountRequired) {
		t.Fatalf("err = %v, want ErrAccountRequired", err)
	}
}

func TestList_SkipsDeletedProducts(t *testing.T) {
	repo := newStubFavoriteRepo()
	products := &stubProducts{products: map[int]*domain.Product{
		1: {ID: 1, Title: "Kettle"},
	}}
	svc := New(repo, products)

	if err := svc.Add(context.Background(), shopper(), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Favorite a product, then delete it from the catalog out of band.
	repo.favs[2] = true

	list, err := svc.List(context.Background(), shopper())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("list = %+v, want only the surviving product", list)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	svc := New(newStubFavoriteRepo(), &stubProducts{})
	if err := svc.Remove(context.Background(), shopper(), 42); err != nil {
		t.Fatalf("remove of absent favorite: %v", err)
	}
}
