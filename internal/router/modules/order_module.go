package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designershaven/marketplace-api/internal/container"
	handlers "github.com/designershaven/marketplace-api/internal/interface/http"
	"github.com/designershaven/marketplace-api/internal/interface/middleware"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

// OrderModule wires purchasing and the seller dashboard.
// Protected: POST /api/orders, GET /api/user/dashboard
type OrderModule struct {
	Handler *handlers.OrderHandler
	JWT     *helpers.JWTManager
}

func NewOrderModule(h *handlers.OrderHandler, jwt *helpers.JWTManager) *OrderModule {
	return &OrderModule{Handler: h, JWT: jwt}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	// The dashboard scans every order; keep its limiter tight.
	auth.POST("/orders", middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil), m.Handler.PlaceOrder)
	auth.GET("/user/dashboard", middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil), m.Handler.GetDashboard)
}
