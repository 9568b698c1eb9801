package application

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	repo "github.com/designershaven/marketplace-api/internal/domain/repository"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type OrderService struct {
	Orders   repo.OrderRepository
	Products repo.ProductRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, products repo.ProductRepository, rdb *redis.Client, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Products: products, Redis: rdb, Logger: logger}
}

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrder snapshots the referenced products into an immutable order.
// Title, owner email, and price are copied at purchase time so later
// product edits never change what was sold or who gets credited.
func (s *OrderService) PlaceOrder(ctx context.Context, userEmail string, lines []OrderLine) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &entity.Order{UserEmail: userEmail}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		p, err := s.Products.GetByID(line.ProductID)
		if err != nil || p == nil {
			return nil, ErrProductNotFound
		}
		o.Items = append(o.Items, entity.OrderItem{
			ProductID:  p.ID,
			Title:      p.Title,
			OwnerEmail: p.OwnerEmail,
			PriceCents: p.PriceCents,
			Quantity:   line.Quantity,
		})
		o.TotalCents += p.PriceCents * int64(line.Quantity)
	}

	if err := s.Orders.Create(o); err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx, o)
	return o, nil
}

// invalidateDashboards drops the cached rollup for the buyer and every
// seller credited on the order. Best-effort; a stale cache expires on its
// own TTL anyway.
func (s *OrderService) invalidateDashboards(ctx context.Context, o *entity.Order) {
	if s.Redis == nil {
		return
	}
	seen := map[string]bool{o.UserEmail: true}
	emails := []string{o.UserEmail}
	for _, item := range o.Items {
		if !seen[item.OwnerEmail] {
			seen[item.OwnerEmail] = true
			emails = append(emails, item.OwnerEmail)
		}
	}
	for _, email := range emails {
		if err := helpers.RedisDel(ctx, s.Redis, dashboardCacheKey(email)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Warn("dashboard cache invalidation failed")
		}
	}
}
