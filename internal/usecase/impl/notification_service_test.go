package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eventify/internal/domain/entity"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/repository"
	mockRepo "eventify/internal/mocks/repository"
	"eventify/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	businessRepo     *mockRepo.MockBusinessRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return notificationServiceFixtures{
		service:          NewNotificationService(logger, notificationRepo, businessRepo),
		notificationRepo: notificationRepo,
		businessRepo:     businessRepo,
	}
}

func TestNotificationService_ListForProvider_ScopedToOwnedBusinesses(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return([]*entity.Business{
			{ID: "biz-1", OwnerID: "provider-1"},
			{ID: "biz-2", OwnerID: "provider-1"},
		}, nil)

	expected := []*entity.Notification{
		{ID: "n-1", BusinessID: "biz-1", ProductName: "Buffet"},
		{ID: "n-2", BusinessID: "biz-2", ProductName: "Hall"},
	}
	fx.notificationRepo.EXPECT().
		ListForBusinesses(ctx, []string{"biz-1", "biz-2"}).
		Return(expected, nil)

	notifications, err := fx.service.ListForProvider(ctx, "provider-1")

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListForProvider_NoBusinesses(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return([]*entity.Business{}, nil)

	// The repository short-circuits the empty id set without touching the
	// store.
	fx.notificationRepo.EXPECT().
		ListForBusinesses(ctx, []string{}).
		Return([]*entity.Notification{}, nil)

	notifications, err := fx.service.ListForProvider(ctx, "provider-1")

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_ListForProvider_BusinessLookupFails(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return(nil, assert.AnError)

	notifications, err := fx.service.ListForProvider(ctx, "provider-1")

	assert.Nil(t, notifications)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNotificationService_WatchForProvider_StreamsUnread(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return([]*entity.Business{{ID: "biz-1", OwnerID: "provider-1"}}, nil)

	stream := make(chan []*entity.Notification, 2)
	stream <- []*entity.Notification{
		{ID: "n-1", BusinessID: "biz-1", ProductName: "Buffet"},
	}
	stream <- []*entity.Notification{
		{ID: "n-1", BusinessID: "biz-1", ProductName: "Buffet"},
		{ID: "n-2", BusinessID: "biz-1", ProductName: "Hall"},
	}
	close(stream)

	fx.notificationRepo.EXPECT().
		Watch(ctx, []string{"biz-1"}).
		Return(stream, nil)

	updates, err := fx.service.WatchForProvider(ctx, "provider-1")

	require.NoError(t, err)

	first := <-updates
	require.Len(t, first, 1)
	assert.Equal(t, "n-1", first[0].ID)

	second := <-updates
	require.Len(t, second, 2)
	assert.Equal(t, "n-2", second[1].ID)

	_, open := <-updates
	assert.False(t, open)
}

func TestNotificationService_WatchForProvider_NoBusinesses(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return([]*entity.Business{}, nil)

	// The repository emits a single empty list for an empty id set
	// without opening a store listener.
	stream := make(chan []*entity.Notification, 1)
	stream <- []*entity.Notification{}
	close(stream)

	fx.notificationRepo.EXPECT().
		Watch(ctx, []string{}).
		Return(stream, nil)

	updates, err := fx.service.WatchForProvider(ctx, "provider-1")

	require.NoError(t, err)
	assert.Empty(t, <-updates)

	_, open := <-updates
	assert.False(t, open)
}

func TestNotificationService_WatchForProvider_BusinessLookupFails(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.businessRepo.EXPECT().
		List(ctx, "provider-1", entity.RoleServiceProvider).
		Return(nil, assert.AnError)

	updates, err := fx.service.WatchForProvider(ctx, "provider-1")

	assert.Nil(t, updates)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, "n-1").
		Return(nil)

	require.NoError(t, fx.service.MarkRead(ctx, "n-1"))
}

func TestNotificationService_MarkRead_Idempotent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	// The write sets the flag unconditionally, so calling twice succeeds
	// twice.
	fx.notificationRepo.EXPECT().
		MarkRead(ctx, "n-1").
		Return(nil).
		Times(2)

	require.NoError(t, fx.service.MarkRead(ctx, "n-1"))
	require.NoError(t, fx.service.MarkRead(ctx, "n-1"))
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, "missing").
		Return(repository.ErrNotificationNotFound)

	err := fx.service.MarkRead(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}
