package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

// StripeGateway talks to a Stripe-compatible HTTP API with form-encoded
// requests and a Bearer secret key.
type StripeGateway struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    *log.Logger
}

func NewStripe(baseURL, secretKey string, logger *log.Logger) *StripeGateway {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &StripeGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

type stripeIntent struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	ClientSecret string       `json:"client_secret"`
	Amount       int64        `json:"amount"`
	Currency     string       `json:"currency"`
	Error        *stripeError `json:"error"`
	LastError    *stripeError `json:"last_payment_error"`
}

type stripeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (g *StripeGateway) TokenizeCard(ctx context.Context, card CardInput) (string, error) {
	form := url.Values{}
	form.Set("type", "card")
	form.Set("card[number]", card.Number)
	form.Set("card[exp_month]", strconv.Itoa(card.ExpMonth))
	form.Set("card[exp_year]", strconv.Itoa(card.ExpYear))
	form.Set("card[cvc]", card.CVC)

	var out struct {
		ID    string       `json:"id"`
		Error *stripeError `json:"error"`
	}
	if err := g.post(ctx, "/v1/payment_methods", form, "", &out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", &domain.GatewayError{Code: out.Error.Code, Message: out.Error.Message}
	}
	return out.ID, nil
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*Confirmation, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	var out stripeIntent
	if err := g.post(ctx, "/v1/payment_intents", form, idempotencyKey, &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, &domain.GatewayError{Code: out.Error.Code, Message: out.Error.Message}
	}
	g.logger.Printf("payment: intent created ref=%s amount=%d %s", out.ID, out.Amount, out.Currency)
	return confirmationFromIntent(out), nil
}

func (g *StripeGateway) ConfirmIntent(ctx context.Context, paymentRef, methodToken string) (*Confirmation, error) {
	form := url.Values{}
	if methodToken != "" {
		form.Set("payment_method", methodToken)
	}

	var out stripeIntent
	if err := g.post(ctx, "/v1/payment_intents/"+paymentRef+"/confirm", form, "", &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, &domain.GatewayError{Code: out.Error.Code, Message: out.Error.Message}
	}
	if out.Status != "succeeded" {
		ge := &domain.GatewayError{Code: out.Status, Message: "payment was not captured"}
		if out.LastError != nil {
			ge.Code = out.LastError.Code
			ge.Message = out.LastError.Message
		}
		return nil, ge
	}
	g.logger.Printf("payment: captured ref=%s", out.ID)
	return confirmationFromIntent(out), nil
}

func (g *StripeGateway) post(ctx context.Context, path string, form url.Values, idempotencyKey string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return &domain.GatewayError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Printf("payment: %s transport error=%v", path, err)
		return &domain.GatewayError{Message: "payment service unreachable"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &domain.GatewayError{Message: "reading payment response failed"}
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error *stripeError `json:"error"`
		}
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != nil {
			return &domain.GatewayError{Code: errBody.Error.Code, Message: errBody.Error.Message}
		}
		return &domain.GatewayError{Message: fmt.Sprintf("payment service returned %d", resp.StatusCode)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.GatewayError{Message: "malformed payment response"}
	}
	return nil
}

func confirmationFromIntent(in stripeIntent) *Confirmation {
	return &Confirmation{
		PaymentRef:   in.ID,
		ClientSecret: in.ClientSecret,
		AmountCents:  in.Amount,
		Currency:     in.Currency,
	}
}
