package repository

import "github.com/designershaven/marketplace-api/internal/domain/entity"

// NotificationRepository persists derived notification records.
// ListRecent resolves sender identity and product title for display.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListRecent(recipientID string, limit int) ([]*entity.Notification, error)
	MarkAllRead(recipientID string) error
}
