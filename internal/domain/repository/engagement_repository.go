package repository

import "github.com/designershaven/marketplace-api/internal/domain/entity"

// LikeRepository stores like edges with set semantics: a (product, user)
// pair is present at most once. Toggle flips membership atomically and
// reports the resulting state and count.
type LikeRepository interface {
	Toggle(productID, userID string) (liked bool, count int, err error)
	Count(productID string) (int, error)
}

// FollowRepository stores directed follow edges. Toggle flips the edge
// atomically; follower/following views are derived from the same rows, so
// the two sides can never disagree.
type FollowRepository interface {
	Toggle(followerID, followeeID string) (following bool, err error)
	IsFollowing(followerID, followeeID string) (bool, error)
	CountFollowers(userID string) (int, error)
	CountFollowing(userID string) (int, error)
}

// CommentRepository stores product comments. The list is append-only;
// Delete is only ever called after the service has checked authorship.
type CommentRepository interface {
	Create(c *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByProduct(productID string) ([]*entity.Comment, error)
	Delete(id string) error
}
