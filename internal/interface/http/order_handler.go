package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/pkg/response"
	"github.com/designershaven/marketplace-api/pkg/validation"
)

type OrderHandler struct {
	Orders    *application.OrderService
	Dashboard *application.DashboardService
	Logger    *logrus.Logger
}

func NewOrderHandler(orders *application.OrderService, dashboard *application.DashboardService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Orders: orders, Dashboard: dashboard, Logger: logger}
}

type orderLineRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type placeOrderRequest struct {
	Items []orderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	email := c.GetString("userEmail")
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	lines := make([]application.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, application.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.Orders.PlaceOrder(c.Request.Context(), email, lines)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyOrder), errors.Is(err, application.ErrInvalidQuantity):
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, application.ErrProductNotFound):
			response.Fail(c, http.StatusNotFound, err.Error(), nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("failed to place order")
			}
			response.Fail(c, http.StatusInternalServerError, "failed to place order", nil)
		}
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"id":          order.ID,
		"total_cents": order.TotalCents,
		"items":       order.Items,
		"created_at":  order.CreatedAt,
	}, "order placed", nil)
}

// GetDashboard GET /api/user/dashboard
func (h *OrderHandler) GetDashboard(c *gin.Context) {
	email := c.GetString("userEmail")
	d, err := h.Dashboard.Compute(c.Request.Context(), email)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("failed to compute dashboard")
		}
		response.Fail(c, http.StatusInternalServerError, "failed to compute dashboard", nil)
		return
	}
	response.OK(c, http.StatusOK, d, "dashboard", nil)
}
