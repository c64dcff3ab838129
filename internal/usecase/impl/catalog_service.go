// Package impl contains the concrete application services.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"eventify/config"
	"eventify/internal/domain/entity"
	"eventify/internal/domain/repository"
	"eventify/internal/usecase"
)

type catalogService struct {
	logger       *slog.Logger
	businessRepo repository.BusinessRepository
	pageSize     int
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(
	logger *slog.Logger,
	businessRepo repository.BusinessRepository,
	cfg *config.Config,
) usecase.CatalogUsecase {
	return &catalogService{
		logger:       logger,
		businessRepo: businessRepo,
		pageSize:     cfg.Catalog.PageSize,
	}
}

// ListBusinesses returns one page of the filtered business listing.
func (s *catalogService) ListBusinesses(ctx context.Context, uid string, role entity.Role, query usecase.PageQuery) (usecase.Page[*entity.Business], error) {
	businesses, err := s.businessRepo.List(ctx, uid, role)
	if err != nil {
		return usecase.Page[*entity.Business]{}, err
	}

	return Paginate(FilterBusinesses(businesses, query.Search, query.Category), query.Page, s.pageSize), nil
}

// ListProducts returns one page of the flattened, filtered product catalog.
func (s *catalogService) ListProducts(ctx context.Context, uid string, role entity.Role, query usecase.PageQuery) (usecase.Page[usecase.CatalogProduct], error) {
	businesses, err := s.businessRepo.List(ctx, uid, role)
	if err != nil {
		return usecase.Page[usecase.CatalogProduct]{}, err
	}

	return Paginate(FilterProducts(FlattenProducts(businesses), query.Search, query.Category), query.Page, s.pageSize), nil
}

// FlattenProducts flattens the products embedded in every business into
// one searchable collection, each tagged with its owning business.
// Relative order is preserved: business order first, then product order
// within the business. No deduplication is applied.
func FlattenProducts(businesses []*entity.Business) []usecase.CatalogProduct {
	products := []usecase.CatalogProduct{}
	for _, business := range businesses {
		for _, product := range business.Products {
			products = append(products, usecase.CatalogProduct{
				Product:          product,
				BusinessID:       business.ID,
				BusinessName:     business.Name,
				BusinessServices: business.Services,
				BusinessCategory: business.Category,
			})
		}
	}

	return products
}

// FilterBusinesses applies the search predicate and category filter to a
// business list, preserving order.
func FilterBusinesses(businesses []*entity.Business, search string, category entity.Category) []*entity.Business {
	filtered := []*entity.Business{}
	for _, business := range businesses {
		if !matchesSearch(search, business.Name) {
			continue
		}
		if !business.MatchesCategory(category) {
			continue
		}
		filtered = append(filtered, business)
	}

	return filtered
}

// FilterProducts applies the search predicate and category filter to a
// flattened product collection, preserving order. The search matches the
// product's own name or its owning business's name; the category filter
// consults the owning business's services set.
func FilterProducts(products []usecase.CatalogProduct, search string, category entity.Category) []usecase.CatalogProduct {
	filtered := []usecase.CatalogProduct{}
	for _, product := range products {
		if !matchesSearch(search, product.Name, product.BusinessName) {
			continue
		}
		if !productMatchesCategory(product, category) {
			continue
		}
		filtered = append(filtered, product)
	}

	return filtered
}

// matchesSearch is the case-insensitive substring predicate. Empty
// search text matches everything.
func matchesSearch(search string, names ...string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}

	return false
}

// productMatchesCategory consults only the owning business's services
// set. The stored category is deliberately left out: records created
// without one carry the stored default, and that default must not make
// their products surface under a category the business never offered.
func productMatchesCategory(product usecase.CatalogProduct, category entity.Category) bool {
	if category == entity.CategoryAll {
		return true
	}
	if service, ok := entity.ServiceFromCategory(category); ok {
		return product.BusinessServices.Contains(service)
	}

	return false
}

// Paginate derives one page deterministically. The page number is
// 1-indexed; TotalPages is ceil(len/size) with a minimum of 1, and an
// out-of-range request clamps to the nearest valid page rather than
// erroring or returning a silently empty slice.
func Paginate[T any](items []T, page, pageSize int) usecase.Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	if start > len(items) {
		start = len(items)
	}

	return usecase.Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}
