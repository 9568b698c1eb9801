package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

// Toggle flips the follow edge in one transaction. Because both sides of
// the relation read the same row, a crash can never leave the graph
// half-updated the way two independent document writes could.
func (r *FollowRepository) Toggle(followerID, followeeID string) (bool, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
	`, followerID, followeeID)
	if err != nil {
		return false, err
	}

	following := false
	if res.RowsAffected() == 0 {
		if _, err := tx.Exec(ctx, `
			INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, followerID, followeeID); err != nil {
			return false, err
		}
		following = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return following, nil
}

func (r *FollowRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2
		)
	`, followerID, followeeID).Scan(&exists)
	return exists, err
}

func (r *FollowRepository) CountFollowers(userID string) (int, error) {
	ctx := context.Background()
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM follows WHERE followee_id = $1
	`, userID).Scan(&count)
	return count, err
}

func (r *FollowRepository) CountFollowing(userID string) (int, error) {
	ctx := context.Background()
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM follows WHERE follower_id = $1
	`, userID).Scan(&count)
	return count, err
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
