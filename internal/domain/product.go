package domain

import "time"

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price"`
	DiscountPct float64   `json:"discountPercentage"`
	Rating      float64   `json:"rating"`
	Stock       int       `json:"stock"`
	Thumbnail   string    `json:"thumbnail"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
