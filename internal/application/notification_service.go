package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	repo "github.com/designershaven/marketplace-api/internal/domain/repository"
)

// recentNotificationLimit caps the inbox view at the 20 newest entries.
const recentNotificationLimit = 20

type NotificationService struct {
	Notifs repo.NotificationRepository
	Logger *logrus.Logger
}

func NewNotificationService(notifs repo.NotificationRepository, logger *logrus.Logger) *NotificationService {
	return &NotificationService{Notifs: notifs, Logger: logger}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return s.Notifs.ListRecent(userID, recentNotificationLimit)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.Notifs.MarkAllRead(userID)
}

// HandleEvent persists a queued notification event. The worker calls this
// for every delivery; self-notifications are dropped here as a second
// guard in case an older publisher ever enqueued one.
func (s *NotificationService) HandleEvent(ctx context.Context, ev entity.NotificationEvent) error {
	if ev.RecipientID == "" || ev.SenderID == "" || ev.RecipientID == ev.SenderID {
		return nil
	}
	return s.Notifs.Create(&entity.Notification{
		RecipientID: ev.RecipientID,
		SenderID:    ev.SenderID,
		Type:        ev.Type,
		ProductID:   ev.ProductID,
	})
}
