package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designershaven/marketplace-api/internal/container"
	handlers "github.com/designershaven/marketplace-api/internal/interface/http"
	"github.com/designershaven/marketplace-api/internal/interface/middleware"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

// NotificationModule wires the inbox routes.
// Protected: GET /api/user/notifications, PUT /api/user/notifications
type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/user/notifications", m.Handler.List)
		auth.PUT("/user/notifications", m.Handler.MarkAllRead)
	}
}
