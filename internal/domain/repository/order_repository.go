package repository

import "github.com/designershaven/marketplace-api/internal/domain/entity"

// OrderRepository persists immutable orders. There is deliberately no
// update method. ListAll feeds the dashboard's full scan.
type OrderRepository interface {
	Create(o *entity.Order) error
	ListAll() ([]*entity.Order, error)
}
