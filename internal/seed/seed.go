// Package seed loads a small sample catalog so a fresh database has
// something to browse. Inserts are idempotent; rerunning the seeder
// leaves existing rows alone.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neski321/E-Store-revamp/internal/domain"
)

var sampleProducts = []domain.Product{
	{
		ID: 10001, Title: "Aurora Wireless Headphones", Category: "electronics", Brand: "Soundline",
		SKU: "SND-AUR-01", Price: 129.99, DiscountPct: 10, Rating: 4.5, Stock: 40,
		Description: "Over-ear wireless headphones with 30 hour battery life.",
		Thumbnail:   "/images/products/aurora-headphones.jpg",
		Images:      []string{"/images/products/aurora-headphones.jpg"},
	},
	{
		ID: 10002, Title: "Trailway Hiking Backpack 40L", Category: "outdoors", Brand: "Northpeak",
		SKU: "NPK-TRL-40", Price: 89.50, Rating: 4.2, Stock: 25,
		Description: "Weatherproof 40 litre pack with hip belt and rain cover.",
		Thumbnail:   "/images/products/trailway-pack.jpg",
		Images:      []string{"/images/products/trailway-pack.jpg"},
	},
	{
		ID: 10003, Title: "Copper Pour-Over Kettle", Category: "kitchen", Brand: "Brewcraft",
		SKU: "BRW-KTL-09", Price: 54.00, DiscountPct: 15, Rating: 4.8, Stock: 12,
		Description: "Gooseneck kettle with thermometer lid, 1 litre.",
		Thumbnail:   "/images/products/copper-kettle.jpg",
		Images:      []string{"/images/products/copper-kettle.jpg"},
	},
	{
		ID: 10004, Title: "Everyday Canvas Sneakers", Category: "apparel", Brand: "Stride",
		SKU: "STR-CNV-22", Price: 45.00, Rating: 3.9, Stock: 60,
		Description: "Low-top canvas sneakers with cushioned insole.",
		Thumbnail:   "/images/products/canvas-sneakers.jpg",
		Images:      []string{"/images/products/canvas-sneakers.jpg"},
	},
	{
		ID: 10005, Title: "Glow Desk Lamp", Category: "home", Brand: "Lumen",
		SKU: "LMN-DSK-03", Price: 32.75, DiscountPct: 5, Rating: 4.1, Stock: 0,
		Description: "Dimmable LED desk lamp with USB charging port.",
		Thumbnail:   "/images/products/glow-lamp.jpg",
		Images:      []string{"/images/products/glow-lamp.jpg"},
	},
	{
		ID: 10006, Title: "Cascade Water Bottle 1L", Category: "outdoors", Brand: "Northpeak",
		SKU: "NPK-BTL-1L", Price: 19.99, Rating: 4.6, Stock: 150,
		Description: "Insulated steel bottle, keeps drinks cold for 24 hours.",
		Thumbnail:   "/images/products/cascade-bottle.jpg",
		Images:      []string{"/images/products/cascade-bottle.jpg"},
	},
}

// Apply inserts the sample catalog.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO products (id, title, description, category, brand, sku, price, discount_percentage, rating, stock, thumbnail, images)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO NOTHING
`
	for _, p := range sampleProducts {
		if _, err := pool.Exec(ctx, q,
			p.ID, p.Title, p.Description, p.Category, p.Brand, p.SKU,
			p.Price, p.DiscountPct, p.Rating, p.Stock, p.Thumbnail, p.Images,
		); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return nil
}
