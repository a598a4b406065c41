package domain

import "time"

// CartItem is one line in a user's cart. The line's own ID is its storage
// identity; ProductID references the catalog. Price, stock ceiling and
// discount are snapshotted from the product at add time.
type CartItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	ProductID   int       `json:"productId"`
	Title       string    `json:"title"`
	UnitPrice   float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Stock       int       `json:"stock"`
	DiscountPct float64   `json:"discountPercentage"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClampQuantity bounds a requested quantity to [1, stock ceiling].
// Out-of-range requests are clamped, not rejected.
func (i CartItem) ClampQuantity(requested int) int {
	if requested < 1 {
		return 1
	}
	if i.Stock > 0 && requested > i.Stock {
		return i.Stock
	}
	return requested
}
