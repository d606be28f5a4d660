package models

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a completed (simulated) checkout.
type Order struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	OrderNumber    string          `json:"order_number" db:"order_number"`
	Status         string          `json:"status" db:"status"`
	FirstName      string          `json:"first_name" db:"first_name"`
	LastName       string          `json:"last_name" db:"last_name"`
	Email          string          `json:"email" db:"email"`
	Phone          string          `json:"phone" db:"phone"`
	Address        string          `json:"address" db:"address"`
	City           string          `json:"city" db:"city"`
	Region         string          `json:"region" db:"region"`
	PostalCode     string          `json:"postal_code" db:"postal_code"`
	Country        string          `json:"country" db:"country"`
	ShippingMethod string          `json:"shipping_method" db:"shipping_method"`
	PaymentMethod  string          `json:"payment_method" db:"payment_method"`
	Subtotal       float64         `json:"subtotal" db:"subtotal"`
	Discount       float64         `json:"discount" db:"discount"`
	Shipping       float64         `json:"shipping" db:"shipping"`
	Tax            float64         `json:"tax" db:"tax"`
	TotalAmount    float64         `json:"total_amount" db:"total_amount"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	Items          []OrderItem     `json:"items,omitempty"`
}

// OrderItem represents one cart line captured at checkout time.
type OrderItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	OrderID      uuid.UUID `json:"order_id" db:"order_id"`
	ProductID    string    `json:"product_id" db:"product_id"`
	ProductTitle string    `json:"product_title" db:"product_title"`
	ProductImage string    `json:"product_image" db:"product_image"`
	UnitPrice    float64   `json:"unit_price" db:"unit_price"`
	Quantity     int       `json:"quantity" db:"quantity"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (Order) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		order_number VARCHAR(50) NOT NULL UNIQUE,
		status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		region TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT 'Ghana',
		shipping_method VARCHAR(20) NOT NULL CHECK (shipping_method IN ('standard', 'express')),
		payment_method VARCHAR(20) NOT NULL CHECK (payment_method IN ('card', 'mobile_money', 'bank_transfer')),
		subtotal NUMERIC(12,2) NOT NULL,
		discount NUMERIC(12,2) NOT NULL DEFAULT 0,
		shipping NUMERIC(12,2) NOT NULL DEFAULT 0,
		tax NUMERIC(12,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}

func (OrderItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL,
		product_title TEXT NOT NULL,
		product_image TEXT NOT NULL DEFAULT '',
		unit_price NUMERIC(12,2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
