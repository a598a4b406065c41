package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable indicates the backing store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrAccountRequired indicates the caller is anonymous but the action
	// needs a real account (checkout, favorites, reviews).
	ErrAccountRequired = errors.New("account required")
	// ErrForbidden indicates the caller's role does not allow the action.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports every problem found during checkout gating,
// not just the first one.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// GatewayError wraps a payment processor decline or transport failure.
// The cart is left untouched so the user can retry.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment gateway: %s (%s)", e.Message, e.Code)
	}
	return "payment gateway: " + e.Message
}

// PartialCompletionError means payment was captured but finalizing the
// order (cart clear / status flip) failed. The order ID is preserved so
// the charge can be reconciled against the pending order record.
type PartialCompletionError struct {
	OrderID string
	Err     error
}

func (e *PartialCompletionError) Error() string {
	return fmt.Sprintf("payment succeeded but order %s was not finalized: %v", e.OrderID, e.Err)
}

func (e *PartialCompletionError) Unwrap() error { return e.Err }
