// Package payment wraps the external card processor. The adapter is a
// linear pipeline: tokenize the card, create and confirm a payment intent,
// hand the confirmation back. Each step short-circuits on error and nothing
// is retried automatically — a retry is the user pressing pay again, made
// safe upstream by the checkout idempotency key.
package payment

import "context"

// CardInput is raw card data accepted for tokenization. Checkout may also
// supply an already-tokenized payment method and skip this step.
type CardInput struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"`
}

// Confirmation is the processor's record of a captured payment.
type Confirmation struct {
	PaymentRef   string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

type Gateway interface {
	TokenizeCard(ctx context.Context, card CardInput) (string, error)
	// CreateIntent registers the charge with the processor and returns the
	// client secret the storefront needs for 3DS-style confirmation.
	CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*Confirmation, error)
	// ConfirmIntent captures the payment for a previously created intent.
	ConfirmIntent(ctx context.Context, paymentRef, methodToken string) (*Confirmation, error)
}

// Charge runs the full pipeline for a server-driven capture: tokenize (if
// a raw card was given), create the intent under the idempotency key, then
// confirm it.
func Charge(ctx context.Context, gw Gateway, card *CardInput, methodToken string, amountCents int64, currency, idempotencyKey string) (*Confirmation, error) {
	if methodToken == "" && card != nil {
		token, err := gw.TokenizeCard(ctx, *card)
		if err != nil {
			return nil, err
		}
		methodToken = token
	}

	intent, err := gw.CreateIntent(ctx, amountCents, currency, idempotencyKey)
	if err != nil {
		return nil, err
	}

	return gw.ConfirmIntent(ctx, intent.PaymentRef, methodToken)
}
