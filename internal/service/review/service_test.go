package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
	avg     float64
	count   int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, rv domain.Review) (*domain.Review, error) {
	r.nextID++
	rv.ID = fmt.Sprintf("rev-%d", r.nextID)
	r.reviews[rv.ID] = &rv
	copied := rv
	return &copied, nil
}

func (r *stubReviewRepo) ListByProduct(_ context.Context, productID int, status string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID && rv.Status == status {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) ListByStatus(_ context.Context, status string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.reviews {
		if rv.Status == status {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) SetStatus(_ context.Context, reviewID, status string) (*domain.Review, error) {
	rv, ok := r.reviews[reviewID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rv.Status = status
	copied := *rv
	return &copied, nil
}

func (r *stubReviewRepo) AverageApprovedRating(_ context.Context, _ int) (float64, int, error) {
	return r.avg, r.count, nil
}

type stubProducts struct {
	products map[int]*domain.Product
	rated    map[int]float64
}

func newStubProducts(ids ...int) *stubProducts {
	s := &stubProducts{products: make(map[int]*domain.Product), rated: make(map[int]float64)}
	for _, id := range ids {
		s.products[id] = &domain.Product{ID: id, Title: "P"}
	}
	return s
}

func (s *stubProducts) GetByID(_ context.Context, id int) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *stubProducts) SetRating(_ context.Context, id int, rating float64) error {
	s.rated[id] = rating
	return nil
}

func shopper() domain.Session {
	return domain.Session{UserID: "user-1", Email: "shopper@example.com", Role: domain.RoleCustomer}
}

func admin() domain.Session {
	return domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
}

func TestSubmit_StartsPending(t *testing.T) {
	svc := New(newStubReviewRepo(), newStubProducts(10001))

	rv, err := svc.Submit(context.Background(), shopper(), 10001, SubmitInput{Rating: 4, Comment: "solid"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rv.Status != domain.ReviewPending {
		t.Fatalf("status = %q, want pending", rv.Status)
	}
	if rv.ReviewerName != "shopper@example.com" {
		t.Fatalf("reviewer defaulted to %q, want session email", rv.ReviewerName)
	}
}

func TestSubmit_Gating(t *testing.T) {
	svc := New(newStubReviewRepo(), newStubProducts(10001))

	if _, err := svc.Submit(context.Background(), domain.AnonymousSession(), 10001, SubmitInput{Rating: 4}); !errors.Is(err, domain.ErrAccountRequired) {
		t.Fatalf("anonymous err = %v, want ErrAccountRequired", err)
	}

	var vErr *domain.ValidationError
	if _, err := svc.Submit(context.Background(), shopper(), 10001, SubmitInput{Rating: 6}); !errors.As(err, &vErr) {
		t.Fatalf("rating 6 err = %v, want ValidationError", err)
	}

	if _, err := svc.Submit(context.Background(), shopper(), 99999, SubmitInput{Rating: 4}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing product err = %v, want ErrNotFound", err)
	}
}

func TestListApproved_HidesPending(t *testing.T) {
	repo := newStubReviewRepo()
	svc := New(repo, newStubProducts(10001))

	if _, err := svc.Submit(context.Background(), shopper(), 10001, SubmitInput{Rating: 4}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	list, err := svc.ListApproved(context.Background(), 10001)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("pending review is publicly visible: %v", list)
	}
}

func TestModerate_ApprovalUpdatesProductRating(t *testing.T) {
	repo := newStubReviewRepo()
	repo.avg = 4.5
	repo.count = 2
	products := newStubProducts(10001)
	svc := New(repo, products)

	rv, err := svc.Submit(context.Background(), shopper(), 10001, SubmitInput{Rating: 5})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.Moderate(context.Background(), shopper(), rv.ID, domain.ReviewApproved); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin moderation err = %v, want ErrForbidden", err)
	}

	approved, err := svc.Moderate(context.Background(), admin(), rv.ID, domain.ReviewApproved)
	if err != nil {
		t.Fatalf("moderate: %v", err)
	}
	if approved.Status != domain.ReviewApproved {
		t.Fatalf("status = %q", approved.Status)
	}
	if products.rated[10001] != 4.5 {
		t.Fatalf("product rating = %v, want recomputed 4.5", products.rated[10001])
	}
}

func TestModerate_RejectionSkipsRating(t *testing.T) {
	repo := newStubReviewRepo()
	products := newStubProducts(10001)
	svc := New(repo, products)

	rv, err := svc.Submit(context.Background(), shopper(), 10001, SubmitInput{Rating: 1})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Moderate(context.Background(), admin(), rv.ID, domain.ReviewRejected); err != nil {
		t.Fatalf("moderate: %v", err)
	}
	if len(products.rated) != 0 {
		t.Fatal("rejection must not touch the product rating")
	}
}
