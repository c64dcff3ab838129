package usecase

import (
	"context"

	"eventify/internal/domain/entity"
)

// AttachProductInput identifies the product being attached to an event.
type AttachProductInput struct {
	BusinessID  string `json:"businessId" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
}

// AttachResult reports the two steps of the attach flow independently.
// The attach commit and the notification are not one transaction: a
// notification failure after the attach committed leaves the attach in
// place and is reported here, never rolled back.
type AttachResult struct {
	Event            *entity.Event `json:"event"`
	NotificationSent bool          `json:"notificationSent"`
	NotificationErr  string        `json:"notificationError,omitempty"`
}

// EventUsecase defines the event-side slice this subsystem owns: the
// attach-product flow and its notification relay.
type EventUsecase interface {
	// AttachProduct appends the product to the caller's event, then
	// relays a notification to the owning business.
	AttachProduct(ctx context.Context, uid string, eventID string, input AttachProductInput) (*AttachResult, error)
}
