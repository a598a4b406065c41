package review

import (
	"context"
	"errors"
	"strings"

	"github.com/neski321/E-Store-revamp/internal/domain"
	reviewrepo "github.com/neski321/E-Store-revamp/internal/repository/review"
)

type productRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	SetRating(ctx context.Context, id int, rating float64) error
}

type Service struct {
	repo     reviewrepo.Repository
	products productRepo
}

func New(repo reviewrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type SubmitInput struct {
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewerName"`
}

// Submit files a review for moderation; it is not publicly visible until
// approved.
func (s *Service) Submit(ctx context.Context, sess domain.Session, productID int, in SubmitInput) (*domain.Review, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, &domain.ValidationError{Problems: []string{"rating must be between 1 and 5"}}
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.ReviewerName)
	if name == "" {
		name = sess.Email
	}
	return s.repo.Create(ctx, domain.Review{
		ProductID:    productID,
		UserID:       sess.UserID,
		ReviewerName: name,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
		Status:       domain.ReviewPending,
	})
}

// ListApproved is the public view of a product's reviews.
func (s *Service) ListApproved(ctx context.Context, productID int) ([]domain.Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID, domain.ReviewApproved)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// ListPending is the moderation queue.
func (s *Service) ListPending(ctx context.Context, sess domain.Session) ([]domain.Review, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	reviews, err := s.repo.ListByStatus(ctx, domain.ReviewPending)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// Moderate approves or rejects a pending review. Approval folds the
// rating into the product's average.
func (s *Service) Moderate(ctx context.Context, sess domain.Session, reviewID, status string) (*domain.Review, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if status != domain.ReviewApproved && status != domain.ReviewRejected {
		return nil, &domain.ValidationError{Problems: []string{"status must be approved or rejected"}}
	}
	rv, err := s.repo.SetStatus(ctx, reviewID, status)
	if err != nil {
		return nil, err
	}
	if status == domain.ReviewApproved {
		avg, count, err := s.repo.AverageApprovedRating(ctx, rv.ProductID)
		if err == nil && count > 0 {
			if err := s.products.SetRating(ctx, rv.ProductID, avg); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
	}
	return rv, nil
}
