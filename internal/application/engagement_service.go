package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
	repo "github.com/designershaven/marketplace-api/internal/domain/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the comment author")
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrEmptyComment    = errors.New("comment text is empty")
)

// Publisher is the queue side of notification fan-out. Satisfied by
// helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// EngagementService owns the like, follow, and comment relations and
// derives notifications from their mutations.
type EngagementService struct {
	Users    repo.UserRepository
	Products repo.ProductRepository
	Likes    repo.LikeRepository
	Follows  repo.FollowRepository
	Comments repo.CommentRepository
	Notifs   repo.NotificationRepository
	Queue    Publisher
	Logger   *logrus.Logger
}

func NewEngagementService(users repo.UserRepository, products repo.ProductRepository, likes repo.LikeRepository, follows repo.FollowRepository, comments repo.CommentRepository, notifs repo.NotificationRepository, queue Publisher, logger *logrus.Logger) *EngagementService {
	return &EngagementService{
		Users:    users,
		Products: products,
		Likes:    likes,
		Follows:  follows,
		Comments: comments,
		Notifs:   notifs,
		Queue:    queue,
		Logger:   logger,
	}
}

type LikeResult struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}

type FollowResult struct {
	IsFollowing    bool `json:"is_following"`
	FollowersCount int  `json:"followers_count"`
	FollowingCount int  `json:"following_count"`
}

// ToggleLike flips the acting user's like on a product. A like-notification
// goes to the owner only on the liking half of the toggle, and never for
// the owner liking their own product.
func (s *EngagementService) ToggleLike(ctx context.Context, productID, userID string) (LikeResult, error) {
	p, err := s.Products.GetByID(productID)
	if err != nil || p == nil {
		return LikeResult{}, ErrProductNotFound
	}
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return LikeResult{}, ErrUserNotFound
	}

	liked, count, err := s.Likes.Toggle(productID, userID)
	if err != nil {
		return LikeResult{}, err
	}

	if liked && p.OwnerEmail != u.Email {
		s.notify(ctx, entity.NotificationEvent{
			SenderID:  userID,
			Type:      entity.NotificationLike,
			ProductID: productID,
		}, p.OwnerEmail)
	}

	return LikeResult{IsLiked: liked, LikesCount: count}, nil
}

// ToggleFollow flips the follow edge from actor to target. Both the
// follower and following views read the same edge row, so a successful
// toggle leaves the graph symmetric by construction.
func (s *EngagementService) ToggleFollow(ctx context.Context, actorID, targetID string) (FollowResult, error) {
	if actorID == targetID {
		return FollowResult{}, ErrSelfFollow
	}
	target, err := s.Users.GetByID(targetID)
	if err != nil || target == nil {
		return FollowResult{}, ErrUserNotFound
	}
	if _, err := s.Users.GetByID(actorID); err != nil {
		return FollowResult{}, ErrUserNotFound
	}

	following, err := s.Follows.Toggle(actorID, targetID)
	if err != nil {
		return FollowResult{}, err
	}

	if following {
		s.notifyUser(ctx, entity.NotificationEvent{
			RecipientID: targetID,
			SenderID:    actorID,
			Type:        entity.NotificationFollow,
		})
	}

	followers, err := s.Follows.CountFollowers(targetID)
	if err != nil {
		return FollowResult{}, err
	}
	followingCount, err := s.Follows.CountFollowing(actorID)
	if err != nil {
		return FollowResult{}, err
	}

	return FollowResult{
		IsFollowing:    following,
		FollowersCount: followers,
		FollowingCount: followingCount,
	}, nil
}

// AddComment appends a comment to a product. Text must be non-empty after
// trimming; the stored body keeps the trimmed form.
func (s *EngagementService) AddComment(ctx context.Context, productID, userID, text string) (*entity.Comment, error) {
	body := strings.TrimSpace(text)
	if body == "" {
		return nil, ErrEmptyComment
	}
	p, err := s.Products.GetByID(productID)
	if err != nil || p == nil {
		return nil, ErrProductNotFound
	}
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	c := &entity.Comment{
		ProductID:       productID,
		UserID:          userID,
		Body:            body,
		AuthorName:      u.Name,
		AuthorAvatarURL: u.AvatarURL,
	}
	if err := s.Comments.Create(c); err != nil {
		return nil, err
	}

	if p.OwnerEmail != u.Email {
		s.notify(ctx, entity.NotificationEvent{
			SenderID:  userID,
			Type:      entity.NotificationComment,
			ProductID: productID,
		}, p.OwnerEmail)
	}

	return c, nil
}

// DeleteComment removes a comment if and only if the acting user wrote it.
func (s *EngagementService) DeleteComment(ctx context.Context, productID, commentID, userID string) error {
	if _, err := s.Products.GetByID(productID); err != nil {
		return ErrProductNotFound
	}
	c, err := s.Comments.GetByID(commentID)
	if err != nil || c == nil {
		return ErrCommentNotFound
	}
	if c.ProductID != productID {
		return ErrCommentNotFound
	}
	if c.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.Comments.Delete(commentID)
}

func (s *EngagementService) ListComments(ctx context.Context, productID string) ([]*entity.Comment, error) {
	if _, err := s.Products.GetByID(productID); err != nil {
		return nil, ErrProductNotFound
	}
	return s.Comments.ListByProduct(productID)
}

type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	UserCode       string `json:"user_code"`
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
}

// GetProfile returns a user's public profile with graph counts. viewerID
// may be empty for anonymous callers.
func (s *EngagementService) GetProfile(ctx context.Context, userID, viewerID string) (*Profile, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	followers, err := s.Follows.CountFollowers(userID)
	if err != nil {
		return nil, err
	}
	following, err := s.Follows.CountFollowing(userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		ID:             u.ID,
		Username:       u.Username,
		UserCode:       u.UserCode,
		Name:           u.Name,
		Bio:            u.Bio,
		AvatarURL:      u.AvatarURL,
		FollowersCount: followers,
		FollowingCount: following,
	}
	if viewerID != "" && viewerID != userID {
		isFollowing, err := s.Follows.IsFollowing(viewerID, userID)
		if err == nil {
			p.IsFollowing = isFollowing
		}
	}
	return p, nil
}

// notify resolves a recipient by owner email and fans out. Resolution
// failures are logged and swallowed like every other notification error.
func (s *EngagementService) notify(ctx context.Context, ev entity.NotificationEvent, ownerEmail string) {
	owner, err := s.Users.GetByEmail(ownerEmail)
	if err != nil || owner == nil {
		if s.Logger != nil {
			s.Logger.WithField("owner_email", ownerEmail).Warn("notification recipient not resolved")
		}
		return
	}
	ev.RecipientID = owner.ID
	s.notifyUser(ctx, ev)
}

// notifyUser delivers a notification best-effort: published to the queue
// when one is configured, written through the repository otherwise. A
// failure never propagates to the triggering mutation.
func (s *EngagementService) notifyUser(ctx context.Context, ev entity.NotificationEvent) {
	if ev.RecipientID == ev.SenderID {
		return
	}
	var err error
	switch {
	case s.Queue != nil:
		err = s.Queue.PublishJSON(ctx, ev)
	case s.Notifs != nil:
		err = s.Notifs.Create(&entity.Notification{
			RecipientID: ev.RecipientID,
			SenderID:    ev.SenderID,
			Type:        ev.Type,
			ProductID:   ev.ProductID,
		})
	default:
		return
	}
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"recipient": ev.RecipientID,
			"type":      ev.Type,
		}).Warn("notification delivery failed")
	}
}
