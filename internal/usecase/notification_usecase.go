package usecase

import (
	"context"

	"eventify/internal/domain/entity"
)

// NotificationUsecase defines the notification relay use cases for the
// provider dashboard.
type NotificationUsecase interface {
	// ListForProvider returns all notifications addressed to businesses
	// the provider owns. A provider with no businesses gets an empty list
	// without a notification query.
	ListForProvider(ctx context.Context, uid string) ([]*entity.Notification, error)

	// WatchForProvider streams the unread notifications addressed to
	// businesses the provider owns: an initial full result, then a
	// re-emitted list on every change. The channel closes when ctx is
	// done. A provider with no businesses gets a single empty emission.
	WatchForProvider(ctx context.Context, uid string) (<-chan []*entity.Notification, error)

	// MarkRead acknowledges a notification. Idempotent: an already-read
	// notification is a no-op success.
	MarkRead(ctx context.Context, id string) error
}
