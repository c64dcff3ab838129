// Package usecase defines the application-layer interfaces and the
// input/output types shared with the delivery layer.
package usecase

import (
	"context"

	"eventify/internal/domain/entity"
)

// ContactInput is the structured contact supplied on create/update.
// PhoneNumber is required at this layer; validation failures never reach
// the store.
type ContactInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// CreateBusinessInput carries the caller-supplied fields for a new
// business listing. Stored defaults (empty services/products, concrete
// category) are applied below this layer.
type CreateBusinessInput struct {
	Name        string       `json:"name" validate:"required"`
	Services    []string     `json:"services" validate:"dive,oneof=Catering Refreshments 'Venue Provider'"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Contact     ContactInput `json:"contact" validate:"required"`
	Location    string       `json:"location" validate:"required"`
	ImageURL    string       `json:"imageUrl"`
}

// UpdateBusinessInput carries a partial update; nil pointers mean the
// field is left untouched and is never written to the store.
type UpdateBusinessInput struct {
	Name        *string       `json:"name"`
	Services    []string      `json:"services" validate:"omitempty,dive,oneof=Catering Refreshments 'Venue Provider'"`
	Category    *string       `json:"category"`
	Description *string       `json:"description"`
	Contact     *ContactInput `json:"contact"`
	Location    *string       `json:"location"`
	ImageURL    *string       `json:"imageUrl"`
}

// ProductInput carries the fields of an embedded product.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	InStock     bool   `json:"inStock"`
	Category    string `json:"category"`
}

// BusinessUsecase defines the business-listing management use cases.
// Caller identity and role are explicit parameters on every operation;
// nothing here reads ambient session state.
type BusinessUsecase interface {
	// List returns the businesses visible to the caller.
	List(ctx context.Context, uid string, role entity.Role) ([]*entity.Business, error)

	// Get returns one normalized business.
	Get(ctx context.Context, id string) (*entity.Business, error)

	// Create persists a new listing owned by the caller with a
	// store-assigned id.
	Create(ctx context.Context, ownerID string, input CreateBusinessInput) (*entity.Business, error)

	// CreateLegacyProfile persists the caller's single business profile
	// keyed by their uid, failing if one already exists.
	CreateLegacyProfile(ctx context.Context, ownerID string, input CreateBusinessInput) (*entity.Business, error)

	// Update applies a partial update to a listing the caller owns and
	// returns the locally merged result without re-fetching.
	Update(ctx context.Context, uid string, id string, input UpdateBusinessInput) (*entity.Business, error)

	// Delete removes a listing the caller owns.
	Delete(ctx context.Context, uid string, id string) error

	// AddProduct appends a product to a listing the caller owns.
	AddProduct(ctx context.Context, uid string, businessID string, input ProductInput) (*entity.Business, error)

	// UpdateProduct replaces the product at the given position.
	UpdateProduct(ctx context.Context, uid string, businessID string, index int, input ProductInput) (*entity.Business, error)

	// DeleteProduct removes the product at the given position.
	DeleteProduct(ctx context.Context, uid string, businessID string, index int) error

	// Watch streams the caller's visible business list until ctx is done.
	Watch(ctx context.Context, uid string, role entity.Role) (<-chan []*entity.Business, error)
}
