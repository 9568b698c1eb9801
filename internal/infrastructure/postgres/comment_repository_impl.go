package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (product_id, user_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.ProductID, c.UserID, c.Body)

	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) GetByID(id string) (*entity.Comment, error) {
	ctx := context.Background()
	c := &entity.Comment{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, product_id, user_id, body, created_at
		FROM comments
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.ProductID, &c.UserID, &c.Body, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}

	return c, nil
}

// ListByProduct returns comments oldest first with the author resolved, the
// order they are shown on the listing page.
func (r *CommentRepository) ListByProduct(productID string) ([]*entity.Comment, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.product_id, c.user_id, c.body, c.created_at,
		       u.name, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.product_id = $1
		ORDER BY c.created_at ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Comment
	for rows.Next() {
		c := &entity.Comment{}
		if err := rows.Scan(&c.ID, &c.ProductID, &c.UserID, &c.Body, &c.CreatedAt,
			&c.AuthorName, &c.AuthorAvatarURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
