// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"eventify/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Identity and role are explicit parameters on every operation that needs
// them; no ambient session state is consulted.
type BusinessRepository interface {
	// List retrieves all businesses visible to the caller: end users see
	// every listing, service providers see only listings they own.
	// Returns an empty slice, never nil, on an empty store.
	List(ctx context.Context, ownerID string, role entity.Role) ([]*entity.Business, error)

	// GetByID retrieves a single normalized business by its document id.
	// Returns ErrBusinessNotFound when absent.
	GetByID(ctx context.Context, id string) (*entity.Business, error)

	// Create persists a new business owned by ownerID, applying stored
	// defaults, and returns the created record with its assigned id.
	Create(ctx context.Context, ownerID string, business *entity.Business) (*entity.Business, error)

	// Update writes only the supplied fields. It does not re-fetch; the
	// caller merges into its own in-memory copy.
	Update(ctx context.Context, id string, fields map[string]any) error

	// UpdateProducts replaces the business's embedded products list.
	UpdateProducts(ctx context.Context, id string, products []entity.Product) error

	// Delete removes the business. Notifications referencing it are left
	// orphaned on purpose.
	Delete(ctx context.Context, id string) error

	// HasBusiness reports whether a business document keyed by the user id
	// exists. Used only by the single-business-per-provider creation path.
	HasBusiness(ctx context.Context, userID string) (bool, error)

	// Watch streams the visible business list for the caller, starting
	// with the current full result and re-emitting on every store change.
	// The channel closes when ctx is done, releasing the listener.
	Watch(ctx context.Context, ownerID string, role entity.Role) (<-chan []*entity.Business, error)
}
