package application

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/designershaven/marketplace-api/internal/domain/repository"
	"github.com/designershaven/marketplace-api/pkg/helpers"
)

const recentTransactionLimit = 10

func dashboardCacheKey(email string) string {
	return "dashboard:" + email
}

// DashboardService computes the per-seller financial rollup. It scans every
// order and reduces in memory; the Redis cache in front of it is what keeps
// the unbounded scan off the hot path.
type DashboardService struct {
	Orders   repo.OrderRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	CacheTTL time.Duration
}

func NewDashboardService(orders repo.OrderRepository, rdb *redis.Client, logger *logrus.Logger, cacheTTL time.Duration) *DashboardService {
	return &DashboardService{Orders: orders, Redis: rdb, Logger: logger, CacheTTL: cacheTTL}
}

// MoneyTotals reports decimal dollars; everything upstream is integer cents.
type MoneyTotals struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"this_month"`
}

type Transaction struct {
	OrderID string    `json:"order_id"`
	Date    time.Time `json:"date"`
	Amount  float64   `json:"amount"`
}

type ProductSales struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	SoldCount int     `json:"sold_count"`
	Revenue   float64 `json:"revenue"`
}

type Dashboard struct {
	Income          MoneyTotals    `json:"income"`
	Expenses        MoneyTotals    `json:"expenses"`
	RecentSales     []Transaction  `json:"recent_sales"`
	RecentPurchases []Transaction  `json:"recent_purchases"`
	TopProducts     []ProductSales `json:"top_products"`
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

// Compute builds the dashboard for userEmail. Orders placed by the user
// count as expenses at their full total; orders placed by anyone else
// contribute income for the line items credited to the user. "This month"
// means on or after the first instant of the current calendar month in
// server-local time.
func (s *DashboardService) Compute(ctx context.Context, userEmail string) (*Dashboard, error) {
	if s.Redis != nil {
		var cached Dashboard
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, dashboardCacheKey(userEmail), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	orders, err := s.Orders.ListAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	var incomeCents, incomeMonthCents int64
	var expenseCents, expenseMonthCents int64
	d := &Dashboard{
		RecentSales:     []Transaction{},
		RecentPurchases: []Transaction{},
		TopProducts:     []ProductSales{},
	}

	type salesAcc struct {
		productID    string
		title        string
		soldCount    int
		revenueCents int64
	}
	sales := map[string]*salesAcc{}

	for _, o := range orders {
		thisMonth := !o.CreatedAt.Before(monthStart)

		if o.UserEmail == userEmail {
			expenseCents += o.TotalCents
			if thisMonth {
				expenseMonthCents += o.TotalCents
			}
			if len(d.RecentPurchases) < recentTransactionLimit {
				d.RecentPurchases = append(d.RecentPurchases, Transaction{
					OrderID: o.ID,
					Date:    o.CreatedAt,
					Amount:  dollars(o.TotalCents),
				})
			}
			continue
		}

		var orderCents int64
		for _, item := range o.Items {
			if item.OwnerEmail != userEmail {
				continue
			}
			lineCents := item.PriceCents * int64(item.Quantity)
			orderCents += lineCents

			key := item.ProductID
			if key == "" {
				key = item.Title
			}
			acc, ok := sales[key]
			if !ok {
				acc = &salesAcc{productID: item.ProductID, title: item.Title}
				sales[key] = acc
			}
			acc.soldCount += item.Quantity
			acc.revenueCents += lineCents
		}
		if orderCents == 0 {
			continue
		}

		incomeCents += orderCents
		if thisMonth {
			incomeMonthCents += orderCents
		}
		if len(d.RecentSales) < recentTransactionLimit {
			d.RecentSales = append(d.RecentSales, Transaction{
				OrderID: o.ID,
				Date:    o.CreatedAt,
				Amount:  dollars(orderCents),
			})
		}
	}

	d.Income = MoneyTotals{Total: dollars(incomeCents), ThisMonth: dollars(incomeMonthCents)}
	d.Expenses = MoneyTotals{Total: dollars(expenseCents), ThisMonth: dollars(expenseMonthCents)}

	top := make([]*salesAcc, 0, len(sales))
	for _, acc := range sales {
		top = append(top, acc)
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].revenueCents > top[j].revenueCents
	})
	if len(top) > 5 {
		top = top[:5]
	}
	for _, acc := range top {
		d.TopProducts = append(d.TopProducts, ProductSales{
			ProductID: acc.productID,
			Title:     acc.title,
			SoldCount: acc.soldCount,
			Revenue:   dollars(acc.revenueCents),
		})
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, dashboardCacheKey(userEmail), d, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", userEmail).Warn("dashboard cache write failed")
		}
	}

	return d, nil
}
