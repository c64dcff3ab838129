// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"eventify/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// Create persists a new notification and returns it with its assigned id.
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)

	// GetByID retrieves a notification by its unique id.
	// Returns ErrNotificationNotFound when absent.
	GetByID(ctx context.Context, id string) (*entity.Notification, error)

	// ListForBusinesses retrieves all notifications whose business id is in
	// the given set. An empty input set yields an empty result without a
	// store query.
	ListForBusinesses(ctx context.Context, businessIDs []string) ([]*entity.Notification, error)

	// MarkRead transitions a notification to read. Marking an already-read
	// notification is a no-op success.
	MarkRead(ctx context.Context, id string) error

	// Watch streams the unread notifications for the given business set:
	// an initial full result, then a re-emitted list on every change. The
	// channel closes when ctx is done. An empty input set emits one empty
	// list without a store subscription.
	Watch(ctx context.Context, businessIDs []string) (<-chan []*entity.Notification, error)
}
