package repository

import "github.com/designershaven/marketplace-api/internal/domain/entity"

// ProductRepository defines product listing persistence. Reads populate
// LikesCount from the product_likes edge table.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
