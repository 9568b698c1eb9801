package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/designershaven/marketplace-api/internal/container"
	handlers "github.com/designershaven/marketplace-api/internal/interface/http"
	"github.com/designershaven/marketplace-api/internal/interface/middleware"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

// CatalogModule wires product listing routes.
// Public: GET /api/products, GET /api/products/search, GET /api/products/:id
// Protected: POST /api/products
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	JWT     *helpers.JWTManager
}

func NewCatalogModule(h *handlers.CatalogHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/products", listLimiter, m.Handler.List)
	rg.GET("/products/search", searchLimiter, m.Handler.Search)
	rg.GET("/products/:id", listLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/products", m.Handler.Create)
	}
}
