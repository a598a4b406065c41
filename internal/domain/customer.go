package domain

import "time"

type Customer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Role         string    `json:"role"`
	Billing      *Address  `json:"billingInfo,omitempty"`
	Shipping     *Address  `json:"shippingInfo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address is a billing or shipping address. Line1 must contain at least
// one word character to count as present for checkout gating.
type Address struct {
	Line1 string `json:"line1" validate:"required,line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}
