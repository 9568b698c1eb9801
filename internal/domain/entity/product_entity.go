package entity

import (
	"time"
)

// Product is a marketplace listing. Ownership is recorded by the seller's
// email (denormalized, not a live user reference). Prices are integer cents.
type Product struct {
	ID          string
	OwnerEmail  string
	Title       string
	Description string
	PriceCents  int64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// LikesCount is derived from the product_likes edge table.
	LikesCount int
}

// Comment belongs to exactly one product and one author. Comments are
// append-only; only the author may delete one.
type Comment struct {
	ID        string
	ProductID string
	UserID    string
	Body      string
	CreatedAt time.Time

	// Resolved author fields for read paths.
	AuthorName      string
	AuthorAvatarURL string
}
