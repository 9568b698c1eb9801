package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designershaven/marketplace-api/internal/container"
	handlers "github.com/designershaven/marketplace-api/internal/interface/http"
	"github.com/designershaven/marketplace-api/internal/interface/middleware"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

// EngagementModule wires like, follow, comment, and profile routes.
// Public: GET /api/products/:id/comments, GET /api/users/:id
// Protected: POST /api/products/:id/like, POST /api/user/follow,
// POST /api/products/:id/comments, DELETE /api/products/:id/comments/:commentId
type EngagementModule struct {
	Handler *handlers.EngagementHandler
	JWT     *helpers.JWTManager
}

func NewEngagementModule(h *handlers.EngagementHandler, jwt *helpers.JWTManager) *EngagementModule {
	return &EngagementModule{Handler: h, JWT: jwt}
}

func (m *EngagementModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products/:id/comments", m.Handler.ListComments)
	rg.GET("/users/:id", middleware.OptionalAuth(container.GetRedis(), m.JWT), m.Handler.GetProfile)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	// Engagement writes are the spammiest surface; keep a per-user limiter on top of IP.
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/products/:id/like", m.Handler.ToggleLike)
		auth.POST("/user/follow", m.Handler.ToggleFollow)
		auth.POST("/products/:id/comments", m.Handler.AddComment)
		auth.DELETE("/products/:id/comments/:commentId", m.Handler.DeleteComment)
	}
}
