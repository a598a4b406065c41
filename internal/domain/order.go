package domain

import "time"

const (
	// OrderPendingCartClear is the compensating-action state: the order is
	// written before the cart is cleared so a crash between payment capture
	// and finalize leaves a reconcilable record instead of a lost charge.
	OrderPendingCartClear = "pending_cart_clear"
	OrderConfirmed        = "confirmed"
	OrderProcessing       = "processing"
	OrderShipped          = "shipped"
	OrderDelivered        = "delivered"
	OrderCancelled        = "cancelled"
)

// Order is an append-only record owned by the placing user. Items and
// addresses are copied by value at placement time; later edits to the live
// cart or profile do not touch it.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"-"`
	Items          []OrderItem `json:"items"`
	Billing        Address     `json:"billingInfo"`
	Shipping       Address     `json:"shippingInfo"`
	Subtotal       float64     `json:"subtotal"`
	DiscountTotal  float64     `json:"discountTotal"`
	Tax            float64     `json:"tax"`
	Total          float64     `json:"total"`
	Status         string      `json:"status"`
	PaymentRef     string      `json:"paymentRef,omitempty"`
	IdempotencyKey string      `json:"-"`
	CreatedAt      time.Time   `json:"orderDate"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ProductID   int     `json:"productId"`
	Title       string  `json:"title"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	DiscountPct float64 `json:"discountPercentage,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// ValidOrderStatus reports whether s is a status fulfillment may set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
