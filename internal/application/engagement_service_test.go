package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newEngagementFixture() (*EngagementService, *fakeNotificationRepo) {
	seller := &entity.User{ID: "u-seller", Email: "seller@designershaven.dev", Username: "seller", Name: "Seller"}
	buyer := &entity.User{ID: "u-buyer", Email: "buyer@designershaven.dev", Username: "buyer", Name: "Buyer"}
	product := &entity.Product{ID: "p-1", OwnerEmail: seller.Email, Title: "Silk Slip Dress", PriceCents: 18500}

	notifs := newFakeNotificationRepo()
	svc := NewEngagementService(
		newFakeUserRepo(seller, buyer),
		newFakeProductRepo(product),
		newFakeLikeRepo(),
		newFakeFollowRepo(),
		newFakeCommentRepo(),
		notifs,
		nil,
		testLogger(),
	)
	return svc, notifs
}

func TestToggleLikeIsInvolutive(t *testing.T) {
	svc, notifs := newEngagementFixture()
	ctx := context.Background()

	res, err := svc.ToggleLike(ctx, "p-1", "u-buyer")
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
	assert.Equal(t, 1, res.LikesCount)

	res, err = svc.ToggleLike(ctx, "p-1", "u-buyer")
	require.NoError(t, err)
	assert.False(t, res.IsLiked)
	assert.Equal(t, 0, res.LikesCount)

	// Only the liking half notifies the owner; the unlike half is silent.
	assert.Equal(t, 1, notifs.countFor("u-seller"))
}

func TestToggleLikeOwnProductDoesNotNotify(t *testing.T) {
	svc, notifs := newEngagementFixture()

	res, err := svc.ToggleLike(context.Background(), "p-1", "u-seller")
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
	assert.Equal(t, 0, notifs.countFor("u-seller"))
}

func TestToggleLikeUnknownProduct(t *testing.T) {
	svc, _ := newEngagementFixture()

	_, err := svc.ToggleLike(context.Background(), "p-missing", "u-buyer")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestToggleFollowKeepsGraphSymmetric(t *testing.T) {
	svc, notifs := newEngagementFixture()
	ctx := context.Background()

	res, err := svc.ToggleFollow(ctx, "u-buyer", "u-seller")
	require.NoError(t, err)
	assert.True(t, res.IsFollowing)
	assert.Equal(t, 1, res.FollowersCount)
	assert.Equal(t, 1, res.FollowingCount)

	sellerFollowers, err := svc.Follows.CountFollowers("u-seller")
	require.NoError(t, err)
	buyerFollowing, err := svc.Follows.CountFollowing("u-buyer")
	require.NoError(t, err)
	assert.Equal(t, sellerFollowers, buyerFollowing)

	// Second toggle removes the same edge from both views.
	res, err = svc.ToggleFollow(ctx, "u-buyer", "u-seller")
	require.NoError(t, err)
	assert.False(t, res.IsFollowing)
	assert.Equal(t, 0, res.FollowersCount)
	assert.Equal(t, 0, res.FollowingCount)

	// Only the follow half notifies.
	assert.Equal(t, 1, notifs.countFor("u-seller"))
}

func TestToggleFollowSelfRejected(t *testing.T) {
	svc, notifs := newEngagementFixture()

	_, err := svc.ToggleFollow(context.Background(), "u-buyer", "u-buyer")
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Equal(t, 0, notifs.countFor("u-buyer"))
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	svc, _ := newEngagementFixture()

	_, err := svc.ToggleFollow(context.Background(), "u-buyer", "u-ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddCommentTrimsAndNotifies(t *testing.T) {
	svc, notifs := newEngagementFixture()
	ctx := context.Background()

	c, err := svc.AddComment(ctx, "p-1", "u-buyer", "  love this dress  ")
	require.NoError(t, err)
	assert.Equal(t, "love this dress", c.Body)
	assert.Equal(t, "Buyer", c.AuthorName)
	assert.Equal(t, 1, notifs.countFor("u-seller"))

	list, err := svc.ListComments(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestAddCommentEmptyRejected(t *testing.T) {
	svc, _ := newEngagementFixture()

	_, err := svc.AddComment(context.Background(), "p-1", "u-buyer", "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestAddCommentOwnProductDoesNotNotify(t *testing.T) {
	svc, notifs := newEngagementFixture()

	_, err := svc.AddComment(context.Background(), "p-1", "u-seller", "restocking soon")
	require.NoError(t, err)
	assert.Equal(t, 0, notifs.countFor("u-seller"))
}

func TestDeleteCommentOnlyByAuthor(t *testing.T) {
	svc, _ := newEngagementFixture()
	ctx := context.Background()

	c, err := svc.AddComment(ctx, "p-1", "u-buyer", "gorgeous")
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, "p-1", c.ID, "u-seller")
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	list, err := svc.ListComments(ctx, "p-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteComment(ctx, "p-1", c.ID, "u-buyer"))
	list, err = svc.ListComments(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteCommentProductMismatch(t *testing.T) {
	svc, _ := newEngagementFixture()
	ctx := context.Background()

	require.NoError(t, svc.Products.Create(&entity.Product{ID: "p-2", OwnerEmail: "seller@designershaven.dev", Title: "Wool Coat", PriceCents: 42000}))
	c, err := svc.AddComment(ctx, "p-1", "u-buyer", "gorgeous")
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, "p-2", c.ID, "u-buyer")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestNotificationsGoThroughQueueWhenConfigured(t *testing.T) {
	svc, notifs := newEngagementFixture()
	queue := &fakePublisher{}
	svc.Queue = queue

	_, err := svc.ToggleLike(context.Background(), "p-1", "u-buyer")
	require.NoError(t, err)

	require.Len(t, queue.events, 1)
	assert.Equal(t, entity.NotificationLike, queue.events[0].Type)
	assert.Equal(t, "u-seller", queue.events[0].RecipientID)
	assert.Equal(t, "u-buyer", queue.events[0].SenderID)
	// Queue delivery replaces the direct write.
	assert.Equal(t, 0, notifs.countFor("u-seller"))
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	svc, _ := newEngagementFixture()
	svc.Queue = &fakePublisher{err: assert.AnError}

	res, err := svc.ToggleLike(context.Background(), "p-1", "u-buyer")
	require.NoError(t, err)
	assert.True(t, res.IsLiked)
}

func TestGetProfileReportsViewerFollowState(t *testing.T) {
	svc, _ := newEngagementFixture()
	ctx := context.Background()

	_, err := svc.ToggleFollow(ctx, "u-buyer", "u-seller")
	require.NoError(t, err)

	p, err := svc.GetProfile(ctx, "u-seller", "u-buyer")
	require.NoError(t, err)
	assert.Equal(t, 1, p.FollowersCount)
	assert.True(t, p.IsFollowing)

	anon, err := svc.GetProfile(ctx, "u-seller", "")
	require.NoError(t, err)
	assert.False(t, anon.IsFollowing)
}
