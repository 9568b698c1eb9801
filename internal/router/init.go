package router

import (
	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/internal/container"
	pginfra "github.com/designershaven/marketplace-api/internal/infrastructure/postgres"
	handlers "github.com/designershaven/marketplace-api/internal/interface/http"
	"github.com/designershaven/marketplace-api/internal/router/modules"
)

// InitModules builds every feature module from container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	products := pginfra.NewProductRepository(pool)
	likes := pginfra.NewLikeRepository(pool)
	follows := pginfra.NewFollowRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	orders := pginfra.NewOrderRepository(pool)
	notifs := pginfra.NewNotificationRepository(pool)

	// Fan-out goes through RabbitMQ when a publisher was constructed;
	// without one the engagement service writes notifications directly.
	var queue application.Publisher
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}

	engagement := application.NewEngagementService(users, products, likes, follows, comments, notifs, queue, logger)
	notifications := application.NewNotificationService(notifs, logger)
	orderSvc := application.NewOrderService(orders, products, container.GetRedis(), logger)
	dashboard := application.NewDashboardService(orders, container.GetRedis(), logger, cfg.DashboardCacheTTL)
	catalog := application.NewCatalogService(products, logger, container.GetES(), cfg.ESProductsIndex)

	jwt := container.GetJWT()

	r.Add(modules.NewEngagementModule(handlers.NewEngagementHandler(engagement, logger), jwt))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(notifications, logger), jwt))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, dashboard, logger), jwt))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(catalog, logger), jwt))
}
