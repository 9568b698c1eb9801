package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	"github.com/designershaven/marketplace-api/internal/domain/repository"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	ctx := context.Background()

	var productID any
	if n.ProductID != "" {
		productID = n.ProductID
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (recipient_id, sender_id, type, product_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, n.RecipientID, n.SenderID, n.Type, productID)

	return row.Scan(&n.ID, &n.CreatedAt)
}

// ListRecent returns the newest notifications first with sender identity
// and product title resolved in one query.
func (r *NotificationRepository) ListRecent(recipientID string, limit int) ([]*entity.Notification, error) {
	ctx := context.Background()
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `
		SELECT n.id, n.recipient_id, n.sender_id, n.type, n.product_id, n.read, n.created_at,
		       u.name, u.avatar_url, p.title
		FROM notifications n
		JOIN users u ON u.id = n.sender_id
		LEFT JOIN products p ON p.id = n.product_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2
	`, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		n := &entity.Notification{}
		var productID, productTitle sql.NullString
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &productID,
			&n.Read, &n.CreatedAt, &n.SenderName, &n.SenderAvatarURL, &productTitle); err != nil {
			return nil, err
		}
		n.ProductID = productID.String
		n.ProductTitle = productTitle.String
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkAllRead flips every unread notification for the recipient. The whole
// inbox clears at once; there is no per-id variant.
func (r *NotificationRepository) MarkAllRead(recipientID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE recipient_id = $1 AND read = FALSE
	`, recipientID)
	return err
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)
