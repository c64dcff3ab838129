package usecase

import (
	"context"

	"eventify/internal/domain/entity"
)

// CatalogProduct is a product flattened out of its owning business and
// tagged with the business identity. A product is unique only per
// (business id, index) pair; no deduplication is applied.
type CatalogProduct struct {
	entity.Product

	BusinessID       string              `json:"businessId"`
	BusinessName     string              `json:"businessName"`
	BusinessServices entity.ServiceTypes `json:"businessServices"`
	BusinessCategory entity.Category     `json:"businessCategory"`
}

// PageQuery is the client view state driving a listing: settled search
// text, category filter and 1-indexed page number.
type PageQuery struct {
	Search   string          `json:"search"`
	Category entity.Category `json:"category"`
	Page     int             `json:"page"`
}

// Page is one derived page of a filtered collection. TotalPages is never
// below 1 and Page is always clamped into [1, TotalPages].
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// CatalogUsecase derives the visible pages of the business and product
// listings for the caller.
type CatalogUsecase interface {
	// ListBusinesses returns one page of the filtered business listing.
	ListBusinesses(ctx context.Context, uid string, role entity.Role, query PageQuery) (Page[*entity.Business], error)

	// ListProducts returns one page of the flattened, filtered product
	// catalog.
	ListProducts(ctx context.Context, uid string, role entity.Role, query PageQuery) (Page[CatalogProduct], error)
}
