package entity

import (
	"time"
)

type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
)

// Notification is a derived record created as a side effect of an
// engagement mutation. It is never created when sender == recipient and is
// only ever mutated by the bulk mark-all-read operation.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    string
	Type        NotificationType
	ProductID   string // empty for follow notifications
	Read        bool
	CreatedAt   time.Time

	// Resolved for read paths.
	SenderName      string
	SenderAvatarURL string
	ProductTitle    string
}

// NotificationEvent is the JSON payload published to the notifications
// queue when a mutation triggers fan-out.
type NotificationEvent struct {
	RecipientID string           `json:"recipient_id"`
	SenderID    string           `json:"sender_id"`
	Type        NotificationType `json:"type"`
	ProductID   string           `json:"product_id,omitempty"`
}
