package product

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"

	"github.com/neski321/E-Store-revamp/internal/domain"
	productrepo "github.com/neski321/E-Store-revamp/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Page is one page of catalog results, shaped like the original API's
// paginated response.
type Page struct {
	Count    int              `json:"count"`
	Next     string           `json:"next"`
	Previous string           `json:"previous"`
	Results  []domain.Product `json:"results"`
}

func (s *Service) List(ctx context.Context, f productrepo.ListFilter) (*Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 12
	}
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	page := &Page{Count: total, Results: items}
	if f.Page*f.PageSize < total {
		page.Next = pageLink(f.Page+1, f.PageSize)
	}
	if f.Page > 1 {
		page.Previous = pageLink(f.Page-1, f.PageSize)
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Brands(ctx context.Context, category string) ([]string, error) {
	return s.repo.Brands(ctx, category)
}

// Create adds a catalog entry under a fresh random 5-digit ID, the scheme
// the original catalog used for product identifiers.
func (s *Service) Create(ctx context.Context, sess domain.Session, p domain.Product) (*domain.Product, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if problems := validateProduct(p); len(problems) > 0 {
		return nil, &domain.ValidationError{Problems: problems}
	}

	for attempt := 0; attempt < 10; attempt++ {
		p.ID = 10000 + rand.Intn(90000)
		if _, err := s.repo.GetByID(ctx, p.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return s.repo.Create(ctx, p)
	}
	return nil, errors.New("could not allocate product id")
}

func (s *Service) Update(ctx context.Context, sess domain.Session, p domain.Product) (*domain.Product, error) {
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if problems := validateProduct(p); len(problems) > 0 {
		return nil, &domain.ValidationError{Problems: problems}
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, sess domain.Session, id int) error {
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func validateProduct(p domain.Product) []string {
	var problems []string
	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title is required")
	}
	if p.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if p.Stock < 0 {
		problems = append(problems, "stock must not be negative")
	}
	return problems
}

func pageLink(page, size int) string {
	return "?page=" + strconv.Itoa(page) + "&page_size=" + strconv.Itoa(size)
}
