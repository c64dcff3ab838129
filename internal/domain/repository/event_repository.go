// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"eventify/internal/domain/entity"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the slice of event persistence this subsystem
// touches: looking an event up and appending attached products.
type EventRepository interface {
	// GetByID retrieves an event by its document id.
	// Returns ErrEventNotFound when absent.
	GetByID(ctx context.Context, id string) (*entity.Event, error)

	// AttachProduct appends a product reference to the event's products
	// list. The append is the committed first step of the attach flow; the
	// notification that follows is reported independently.
	AttachProduct(ctx context.Context, eventID string, product entity.AttachedProduct) error
}
