package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (owner_email, title, description, price_cents, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.OwnerEmail, p.Title, p.Description, p.PriceCents, p.ImageURL)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()
	p := &entity.Product{}

	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.owner_email, p.title, p.description, p.price_cents, p.image_url,
		       p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM product_likes l WHERE l.product_id = p.id)
		FROM products p
		WHERE p.id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.OwnerEmail, &p.Title, &p.Description, &p.PriceCents,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.LikesCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	ctx := context.Background()
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.owner_email, p.title, p.description, p.price_cents, p.image_url,
		       p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM product_likes l WHERE l.product_id = p.id)
		FROM products p
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p := &entity.Product{}
		if err := rows.Scan(&p.ID, &p.OwnerEmail, &p.Title, &p.Description, &p.PriceCents,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.LikesCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
