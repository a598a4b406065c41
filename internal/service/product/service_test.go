package product

import (
	"context"
	"errors"
	"testing"

	"github.com/neski321/E-Store-revamp/internal/domain"
	productrepo "github.com/neski321/E-Store-revamp/internal/repository/product"
)

type stubProductRepo struct {
	products map[int]*domain.Product
	listed   []domain.Product
	total    int

	lastFilter productrepo.ListFilter
	created    []domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, int, error) {
	r.lastFilter = f
	return r.listed, r.total, nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.created = append(r.created, p)
	r.products[p.ID] = &p
	copied := p
	return &copied, nil
}

func (r *stubProductRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.products[p.ID] = &p
	copied := p
	return &copied, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Categories(_ context.Context) ([]string, error) {
	return []string{"electronics", "kitchen"}, nil
}

func (r *stubProductRepo) Brands(_ context.Context, _ string) ([]string, error) {
	return []string{"Brewcraft"}, nil
}

func (r *stubProductRepo) SetRating(_ context.Context, id int, rating float64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Rating = rating
	return nil
}

func adminSession() domain.Session {
	return domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
}

func customerSession() domain.Session {
	return domain.Session{UserID: "user-1", Role: domain.RoleCustomer}
}

func TestList_PaginationLinks(t *testing.T) {
	repo := newStubProductRepo()
	repo.total = 30
	svc := New(repo)

	page, err := svc.List(context.Background(), productrepo.ListFilter{Page: 2, PageSize: 12})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Count != 30 {
		t.Fatalf("count = %d, want 30", page.Count)
	}
	if page.Next != "?page=3&page_size=12" {
		t.Fatalf("next = %q", page.Next)
	}
	if page.Previous != "?page=1&page_size=12" {
		t.Fatalf("previous = %q", page.Previous)
	}
	if page.Results == nil {
		t.Fatal("results must be an empty slice, not nil")
	}
}

func TestList_LastPageHasNoNext(t *testing.T) {
	repo := newStubProductRepo()
	repo.total = 20
	svc := New(repo)

	page, err := svc.List(context.Background(), productrepo.ListFilter{Page: 2, PageSize: 12})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Next != "" {
		t.Fatalf("next = %q, want empty on last page", page.Next)
	}
}

func TestList_DefaultsApplied(t *testing.T) {
	repo := newStubProductRepo()
	svc := New(repo)

	if _, err := svc.List(context.Background(), productrepo.ListFilter{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.PageSize != 12 {
		t.Fatalf("filter = %+v, want page 1 size 12", repo.lastFilter)
	}
}

func TestCreate_AdminOnly(t *testing.T) {
	svc := New(newStubProductRepo())
	_, err := svc.Create(context.Background(), customerSession(), domain.Product{Title: "Lamp", Price: 10})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreate_AssignsFiveDigitID(t *testing.T) {
	repo := newStubProductRepo()
	svc := New(repo)

	created, err := svc.Create(context.Background(), adminSession(), domain.Product{Title: "Lamp", Price: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID < 10000 || created.ID > 99999 {
		t.Fatalf("id = %d, want 5 digits", created.ID)
	}
}

func TestCreate_RejectsInvalid(t *testing.T) {
	svc := New(newStubProductRepo())

	_, err := svc.Create(context.Background(), adminSession(), domain.Product{Title: "  ", Price: 10})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("blank title err = %v, want ValidationError", err)
	}

	_, err = svc.Create(context.Background(), adminSession(), domain.Product{Title: "Lamp", Price: -1})
	if !errors.As(err, &vErr) {
		t.Fatalf("negative price err = %v, want ValidationError", err)
	}
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := newStubProductRepo()
	repo.products[10001] = &domain.Product{ID: 10001, Title: "Lamp"}
	svc := New(repo)

	if err := svc.Delete(context.Background(), customerSession(), 10001); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), adminSession(), 10001); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}
