package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

// Toggle flips like membership inside one transaction. The primary key on
// (product_id, user_id) gives the set semantics; removing then
// conditionally inserting makes concurrent double-toggles settle on a
// consistent final state instead of losing updates.
func (r *LikeRepository) Toggle(productID, userID string) (bool, int, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		DELETE FROM product_likes WHERE product_id = $1 AND user_id = $2
	`, productID, userID)
	if err != nil {
		return false, 0, err
	}

	liked := false
	if res.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, `
			INSERT INTO product_likes (product_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, productID, userID); err != nil {
			return false, 0, err
		}
		liked = true
	}

	var count int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM product_likes WHERE product_id = $1
	`, productID).Scan(&count); err != nil {
		return false, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *LikeRepository) Count(productID string) (int, error) {
	ctx := context.Background()
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM product_likes WHERE product_id = $1
	`, productID).Scan(&count)
	return count, err
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
