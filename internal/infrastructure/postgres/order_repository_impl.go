package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order with its line items as a JSONB snapshot.
// Orders never change after this insert.
func (r *OrderRepository) Create(o *entity.Order) error {
	ctx := context.Background()
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_email, total_cents, items)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, o.UserEmail, o.TotalCents, items)

	return row.Scan(&o.ID, &o.CreatedAt)
}

// ListAll returns every order, newest first. The dashboard's aggregation
// deliberately scans the full table; see the reporting service.
func (r *OrderRepository) ListAll() ([]*entity.Order, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, total_cents, items, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o := &entity.Order{}
		var items []byte
		if err := rows.Scan(&o.ID, &o.UserEmail, &o.TotalCents, &items, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
