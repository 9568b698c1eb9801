package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/pkg/response"
)

type NotificationHandler struct {
	Svc    *application.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *application.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

type notificationView struct {
	ID           string                  `json:"id"`
	Type         entity.NotificationType `json:"type"`
	SenderID     string                  `json:"sender_id"`
	SenderName   string                  `json:"sender_name"`
	SenderAvatar string                  `json:"sender_avatar"`
	ProductID    string                  `json:"product_id,omitempty"`
	ProductTitle string                  `json:"product_title,omitempty"`
	Read         bool                    `json:"read"`
	CreatedAt    time.Time               `json:"created_at"`
}

// List GET /api/user/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	notifs, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("failed to list notifications")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to list notifications", nil)
		return
	}
	views := make([]notificationView, 0, len(notifs))
	for _, n := range notifs {
		views = append(views, notificationView{
			ID:           n.ID,
			Type:         n.Type,
			SenderID:     n.SenderID,
			SenderName:   n.SenderName,
			SenderAvatar: n.SenderAvatarURL,
			ProductID:    n.ProductID,
			ProductTitle: n.ProductTitle,
			Read:         n.Read,
			CreatedAt:    n.CreatedAt,
		})
	}
	response.OK(c, http.StatusOK, gin.H{"notifications": views}, "notifications", nil)
}

// MarkAllRead PUT /api/user/notifications
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.MarkAllRead(c.Request.Context(), uid); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("failed to mark notifications read")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to mark notifications read", nil)
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"message": "all notifications marked as read"}, "notifications updated", nil)
}
