package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/neski321/E-Store-revamp/internal/domain"
	"github.com/neski321/E-Store-revamp/internal/pricing"
	"github.com/neski321/E-Store-revamp/internal/service/payment"
)

type cartLoader interface {
	Load(ctx context.Context, sess domain.Session) ([]domain.CartItem, error)
}

type customerGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, bool, error)
	Finalize(ctx context.Context, userID, orderID string) error
}

type notifier interface {
	SendOrderConfirmation(ctx context.Context, email string, o domain.Order) error
}

// Service sequences one checkout attempt: validate, price, capture payment,
// persist the order, clear the cart, notify. Every remote failure is
// translated into the domain error taxonomy before it reaches a handler.
type Service struct {
	cart      cartLoader
	customers customerGetter
	orders    orderRepo
	gateway   payment.Gateway
	mailer    notifier
	validate  *validator.Validate
	logger    *log.Logger
}

var wordChar = regexp.MustCompile(`\w`)

func New(cart cartLoader, customers customerGetter, orders orderRepo, gateway payment.Gateway, mailer notifier, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	v := validator.New()
	// "present" for checkout gating means at least one word character.
	_ = v.RegisterValidation("line1", func(fl validator.FieldLevel) bool {
		return wordChar.MatchString(fl.Field().String())
	})
	return &Service{
		cart:      cart,
		customers: customers,
		orders:    orders,
		gateway:   gateway,
		mailer:    mailer,
		validate:  v,
		logger:    logger,
	}
}

type PlaceOrderInput struct {
	Card           *payment.CardInput `json:"card,omitempty"`
	MethodToken    string             `json:"paymentMethodId,omitempty"`
	Currency       string             `json:"currency,omitempty"`
	IdempotencyKey string             `json:"idempotencyKey,omitempty"`
}

type Result struct {
	Order  *domain.Order  `json:"order"`
	Totals pricing.Totals `json:"totals"`
	State  State          `json:"state"`
}

// PlaceOrder drives Reviewing → Validating → AwaitingPayment → Confirmed.
// A validation or gateway failure lands in Failed with the cart untouched;
// a failure after capture returns PartialCompletionError carrying the
// pending order so the charge is never orphaned.
func (s *Service) PlaceOrder(ctx context.Context, sess domain.Session, in PlaceOrderInput) (*Result, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}

	state := StateReviewing
	state = s.advance(state, StateValidating, sess.UserID)

	cust, err := s.customers.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccountRequired
		}
		return nil, fmt.Errorf("load profile: %w: %v", domain.ErrStorageUnavailable, err)
	}

	items, err := s.cart.Load(ctx, sess)
	if err != nil {
		return nil, err
	}

	if problems := s.guardProblems(items, cust); len(problems) > 0 {
		s.advance(state, StateFailed, sess.UserID)
		return nil, &domain.ValidationError{Problems: problems}
	}

	// Totals are always derived from the cart as stored right now, never
	// from a figure the client carried across a reload.
	totals := pricing.Calculate(items)
	state = s.advance(state, StateAwaitingPayment, sess.UserID)

	key := in.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}

	conf, err := payment.Charge(ctx, s.gateway, in.Card, in.MethodToken, amountCents(totals.Total), currency, key)
	if err != nil {
		s.advance(state, StateFailed, sess.UserID)
		return nil, err
	}

	rounded := totals.Rounded()
	order := domain.Order{
		UserID:         sess.UserID,
		Items:          snapshotItems(items),
		Billing:        *cust.Billing,
		Shipping:       *cust.Shipping,
		Subtotal:       rounded.Subtotal,
		DiscountTotal:  rounded.DiscountTotal,
		Tax:            rounded.Tax,
		Total:          rounded.Total,
		Status:         domain.OrderPendingCartClear,
		PaymentRef:     conf.PaymentRef,
		IdempotencyKey: key,
	}

	created, isNew, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, &domain.PartialCompletionError{Err: fmt.Errorf("write order (payment %s): %w", conf.PaymentRef, err)}
	}
	if !isNew && created.Status != domain.OrderPendingCartClear {
		// Retried key: the earlier attempt already finished. Nothing was
		// charged twice and nothing more needs doing.
		s.logger.Printf("checkout: idempotent replay user=%s order=%s", sess.UserID, created.ID)
		return &Result{Order: created, Totals: rounded, State: StateConfirmed}, nil
	}

	if err := s.orders.Finalize(ctx, sess.UserID, created.ID); err != nil {
		return nil, &domain.PartialCompletionError{OrderID: created.ID, Err: err}
	}
	created.Status = domain.OrderConfirmed
	state = s.advance(state, StateConfirmed, sess.UserID)

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(ctx, cust.Email, *created); err != nil {
			// Best effort only; the order is already placed.
			s.logger.Printf("checkout: confirmation email order=%s error=%v", created.ID, err)
		}
	}

	s.logger.Printf("checkout: confirmed user=%s order=%s total=%.2f", sess.UserID, created.ID, created.Total)
	return &Result{Order: created, Totals: rounded, State: state}, nil
}

// guardProblems collects every reason checkout cannot proceed, not just
// the first one found.
func (s *Service) guardProblems(items []domain.CartItem, cust *domain.Customer) []string {
	var problems []string
	if len(items) == 0 {
		problems = append(problems, "cart is empty")
	}
	problems = append(problems, s.addressProblems("billing", cust.Billing)...)
	problems = append(problems, s.addressProblems("shipping", cust.Shipping)...)
	return problems
}

func (s *Service) addressProblems(kind string, addr *domain.Address) []string {
	if addr == nil {
		return []string{kind + " address line 1 is required"}
	}
	err := s.validate.Struct(addr)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{kind + " address is invalid"}
	}
	var problems []string
	for _, fe := range fieldErrs {
		if fe.Field() == "Line1" {
			problems = append(problems, kind+" address line 1 is required")
		}
	}
	return problems
}

func (s *Service) advance(from, to State, userID string) State {
	if !from.CanTransitionTo(to) {
		// Transition table bug, not a user error; log loudly and continue.
		s.logger.Printf("checkout: illegal transition %s -> %s user=%s", from, to, userID)
	}
	return to
}

func snapshotItems(items []domain.CartItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.OrderItem{
			ProductID:   item.ProductID,
			Title:       item.Title,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			DiscountPct: item.DiscountPct,
			Thumbnail:   item.Thumbnail,
		})
	}
	return out
}

func amountCents(total float64) int64 {
	return int64(math.Round(total * 100))
}
