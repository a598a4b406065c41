// Package pricing derives order totals from a cart. It is pure: no I/O,
// no side effects, and it never fails — an empty cart prices to zero.
package pricing

import (
	"math"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

// TaxRate is the flat sales tax applied to the post-discount subtotal.
const TaxRate = 0.13

type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	DiscountTotal float64 `json:"discountTotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// Calculate prices a cart. Per-item discounts are netted into the subtotal
// before tax, so tax is charged on the discounted amount. Accumulation is
// plain float64; this is the display estimate, the gateway owns the
// authoritative captured amount. Round only at presentation time.
func Calculate(items []domain.CartItem) Totals {
	var t Totals
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		gross := item.UnitPrice * float64(qty)
		discount := gross * item.DiscountPct / 100
		t.DiscountTotal += discount
		t.Subtotal += gross - discount
	}
	t.Tax = t.Subtotal * TaxRate
	t.Total = t.Subtotal + t.Tax
	return t
}

// Round2 rounds a currency value to 2 decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of t with every field rounded for presentation.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:      Round2(t.Subtotal),
		DiscountTotal: Round2(t.DiscountTotal),
		Tax:           Round2(t.Tax),
		Total:         Round2(t.Total),
	}
}
