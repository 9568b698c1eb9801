package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
)

func TestMarkAllReadFlipsEveryUnread(t *testing.T) {
	notifs := newFakeNotificationRepo()
	svc := NewNotificationService(notifs, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, notifs.Create(&entity.Notification{RecipientID: "u-1", SenderID: "u-2", Type: entity.NotificationFollow}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, notifs.Create(&entity.Notification{RecipientID: "u-1", SenderID: "u-2", Type: entity.NotificationLike, Read: true}))
	}
	require.NoError(t, notifs.Create(&entity.Notification{RecipientID: "u-3", SenderID: "u-2", Type: entity.NotificationFollow}))

	require.NoError(t, svc.MarkAllRead(ctx, "u-1"))

	list, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 5)
	for _, n := range list {
		assert.True(t, n.Read)
	}

	// Another user's inbox is untouched.
	other, err := svc.List(ctx, "u-3")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.False(t, other[0].Read)
}

func TestListCapsAtRecentLimitNewestFirst(t *testing.T) {
	notifs := newFakeNotificationRepo()
	svc := NewNotificationService(notifs, testLogger())

	for i := 0; i < recentNotificationLimit+5; i++ {
		require.NoError(t, notifs.Create(&entity.Notification{
			RecipientID: "u-1",
			SenderID:    fmt.Sprintf("u-sender-%d", i),
			Type:        entity.NotificationFollow,
		}))
	}

	list, err := svc.List(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, recentNotificationLimit)
	// Fake assigns strictly increasing timestamps, so the newest sender
	// comes back first.
	assert.Equal(t, fmt.Sprintf("u-sender-%d", recentNotificationLimit+4), list[0].SenderID)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestHandleEventPersists(t *testing.T) {
	notifs := newFakeNotificationRepo()
	svc := NewNotificationService(notifs, testLogger())
	ctx := context.Background()

	err := svc.HandleEvent(ctx, entity.NotificationEvent{
		RecipientID: "u-1",
		SenderID:    "u-2",
		Type:        entity.NotificationComment,
		ProductID:   "p-1",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationComment, list[0].Type)
	assert.Equal(t, "p-1", list[0].ProductID)
	assert.False(t, list[0].Read)
}

func TestHandleEventDropsSelfAndMalformed(t *testing.T) {
	notifs := newFakeNotificationRepo()
	svc := NewNotificationService(notifs, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.HandleEvent(ctx, entity.NotificationEvent{RecipientID: "u-1", SenderID: "u-1", Type: entity.NotificationLike}))
	require.NoError(t, svc.HandleEvent(ctx, entity.NotificationEvent{SenderID: "u-2", Type: entity.NotificationLike}))
	require.NoError(t, svc.HandleEvent(ctx, entity.NotificationEvent{RecipientID: "u-1", Type: entity.NotificationLike}))

	assert.Equal(t, 0, notifs.countFor("u-1"))
}
