package impl

import (
	"context"
	"log/slog"

	"eventify/internal/domain/entity"
	domainerrors "eventify/internal/domain/errors"
	"eventify/internal/domain/repository"
	"eventify/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	businessRepo     repository.BusinessRepository
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	businessRepo repository.BusinessRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		businessRepo:     businessRepo,
	}
}

// ListForProvider returns all notifications addressed to businesses the
// provider owns. The owned-business lookup scopes the notification query;
// owning nothing short-circuits to an empty result.
func (s *notificationService) ListForProvider(ctx context.Context, uid string) ([]*entity.Notification, error) {
	businesses, err := s.businessRepo.List(ctx, uid, entity.RoleServiceProvider)
	if err != nil {
		return nil, err
	}

	businessIDs := make([]string, 0, len(businesses))
	for _, business := range businesses {
		businessIDs = append(businessIDs, business.ID)
	}

	return s.notificationRepo.ListForBusinesses(ctx, businessIDs)
}

// WatchForProvider streams the unread notifications for the provider's
// businesses. The owned-business set is resolved once at subscription
// time; businesses created afterwards need a fresh subscription.
func (s *notificationService) WatchForProvider(ctx context.Context, uid string) (<-chan []*entity.Notification, error) {
	businesses, err := s.businessRepo.List(ctx, uid, entity.RoleServiceProvider)
	if err != nil {
		return nil, err
	}

	businessIDs := make([]string, 0, len(businesses))
	for _, business := range businesses {
		businessIDs = append(businessIDs, business.ID)
	}

	return s.notificationRepo.Watch(ctx, businessIDs)
}

// MarkRead acknowledges a notification. The underlying write sets the
// read flag regardless of its current value, so repeating the call on an
// already-read notification succeeds without changing state.
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	return nil
}
