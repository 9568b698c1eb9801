package entity

import (
	"time"
)

// OrderItem is an immutable snapshot of a product at purchase time.
// OwnerEmail credits the seller independently of later product edits.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	OwnerEmail string `json:"owner_email"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Order is immutable once created: no status field, no update path.
type Order struct {
	ID         string
	UserEmail  string
	TotalCents int64
	Items      []OrderItem
	CreatedAt  time.Time
}
