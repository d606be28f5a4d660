package models

import (
	"time"

	"github.com/google/uuid"
)

// RecentlyViewed records one product view for a user. Reads keep only the
// most recent view per product, capped to a small window.
type RecentlyViewed struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	ViewedAt  time.Time `json:"viewed_at" db:"viewed_at"`
}

func (RecentlyViewed) TableName() string {
	return "recently_viewed"
}

func (RecentlyViewed) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS recently_viewed (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL,
		viewed_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		UNIQUE (user_id, product_id)
	);`
}
