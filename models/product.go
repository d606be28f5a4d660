package models

import (
	"math"
	"time"
)

// Product categories carried by the catalog.
const (
	CategoryJersey    = "jersey"
	CategoryBoots     = "boots"
	CategoryEquipment = "equipment"
)

// ValidCategories lists every category the catalog accepts. Records with
// anything else are coerced to jersey.
var ValidCategories = []string{CategoryJersey, CategoryBoots, CategoryEquipment}

// DefaultJerseySizes is the size run applied when a record carries none.
var DefaultJerseySizes = []string{"S", "M", "L", "XL", "XXL"}

// DefaultProductImage is used when a record has no images.
const DefaultProductImage = "https://images.unsplash.com/photo-1517927033932-b3d18e61fb3a?auto=format&fit=crop&w=700&q=80"

// Product represents one catalog item.
type Product struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Price           float64   `json:"price" db:"price"`
	DiscountPrice   *float64  `json:"discount_price,omitempty" db:"discount_price"`
	Category        string    `json:"category" db:"category"`
	League          string    `json:"league" db:"league"`
	Team            string    `json:"team" db:"team"`
	Sizes           []string  `json:"sizes" db:"sizes"`
	InStock         bool      `json:"in_stock" db:"in_stock"`
	Images          []string  `json:"images" db:"images"`
	Rating          float64   `json:"rating" db:"rating"`
	ReviewCount     int       `json:"review_count" db:"review_count"`
	Features        []string  `json:"features" db:"features"`
	Stock           *int      `json:"stock,omitempty" db:"stock"`
	ReleaseDate     string    `json:"release_date" db:"release_date"`
	BestsellerScore float64   `json:"bestseller_score" db:"bestseller_score"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// EffectivePrice returns the discount price when one is set, otherwise the
// list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercentage returns the rounded percent saved against the list
// price, or 0 when the product is not actually discounted.
func (p Product) DiscountPercentage() int {
	if p.DiscountPrice == nil || *p.DiscountPrice >= p.Price || p.Price <= 0 {
		return 0
	}
	diff := p.Price - *p.DiscountPrice
	return int(math.Round(diff / p.Price * 100))
}

// IsValidCategory reports whether value is a known product category.
func IsValidCategory(value string) bool {
	for _, c := range ValidCategories {
		if c == value {
			return true
		}
	}
	return false
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL DEFAULT 0,
		discount_price NUMERIC(12,2),
		category TEXT NOT NULL DEFAULT 'jersey',
		league TEXT NOT NULL DEFAULT 'Neutral',
		team TEXT NOT NULL DEFAULT 'Neutral',
		sizes TEXT[] NOT NULL DEFAULT '{}',
		in_stock BOOLEAN NOT NULL DEFAULT TRUE,
		images TEXT[] NOT NULL DEFAULT '{}',
		rating NUMERIC(3,1) NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		features TEXT[] NOT NULL DEFAULT '{}',
		stock INTEGER,
		release_date DATE NOT NULL DEFAULT CURRENT_DATE,
		bestseller_score NUMERIC(5,1) NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	CREATE INDEX IF NOT EXISTS idx_products_league ON products(league);`
}
