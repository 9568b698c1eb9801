package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/pkg/response"
	"github.com/designershaven/marketplace-api/pkg/validation"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=5000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
}

func productView(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"owner_email": p.OwnerEmail,
		"title":       p.Title,
		"description": p.Description,
		"price_cents": p.PriceCents,
		"image_url":   p.ImageURL,
		"likes_count": p.LikesCount,
		"created_at":  p.CreatedAt,
	}
}

// Create POST /api/products
func (h *CatalogHandler) Create(c *gin.Context) {
	email := c.GetString("userEmail")
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreateProduct(c.Request.Context(), email, application.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("failed to create product")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to create product", nil)
		return
	}
	response.OK(c, http.StatusCreated, productView(p), "product created", nil)
}

// Get GET /api/products/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.Fail(c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "failed to load product", nil)
		return
	}
	response.OK(c, http.StatusOK, productView(p), "product", nil)
}

// List GET /api/products
func (h *CatalogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	products, err := h.Svc.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("failed to list products")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	response.OK(c, http.StatusOK, gin.H{"products": views}, "products", map[string]any{"limit": limit, "offset": offset})
}

// Search GET /api/products/search
func (h *CatalogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchProducts(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("product search failed")
		}
		response.Fail(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"results": hits}, "search results", nil)
}
