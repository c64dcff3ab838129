package handler

import (
	"net/http"
	"strconv"

	"eventify/internal/delivery/http/response"
	"eventify/internal/domain/entity"
	"eventify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the filtered, paginated business and product
// listings.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// pageQuery reads the listing view state from query parameters. An
// unknown category falls back to the catch-all and a non-numeric page
// falls back to 1; out-of-range pages are clamped downstream.
func pageQuery(c echo.Context) usecase.PageQuery {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return usecase.PageQuery{
		Search:   c.QueryParam("search"),
		Category: entity.FilterCategoryFromString(c.QueryParam("category")),
		Page:     page,
	}
}

// ListBusinesses handles the business listing request.
func (h *CatalogHandler) ListBusinesses(c echo.Context) error {
	uid, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	page, err := h.uc.ListBusinesses(c.Request().Context(), uid, role, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Businesses retrieved successfully")
}

// ListProducts handles the flattened product catalog request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	uid, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	page, err := h.uc.ListProducts(c.Request().Context(), uid, role, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Products retrieved successfully")
}
