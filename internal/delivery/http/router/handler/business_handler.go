package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"eventify/internal/delivery/http/response"
	"eventify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business-listing handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles the request for a single business listing.
func (h *BusinessHandler) Get(c echo.Context) error {
	business, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// Create handles the creation of a new business listing.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	business, err := h.uc.Create(c.Request().Context(), uid, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// CreateProfile handles the legacy single-profile creation keyed by the
// caller's uid.
func (h *BusinessHandler) CreateProfile(c echo.Context) error {
	var input usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	business, err := h.uc.CreateLegacyProfile(c.Request().Context(), uid, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business profile created successfully")
}

// Update handles a partial update of a business listing.
func (h *BusinessHandler) Update(c echo.Context) error {
	var input usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	business, err := h.uc.Update(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete handles the removal of a business listing.
func (h *BusinessHandler) Delete(c echo.Context) error {
	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	if err := h.uc.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Business deleted successfully")
}

// AddProduct appends a product to a listing the caller owns.
func (h *BusinessHandler) AddProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	business, err := h.uc.AddProduct(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Product added successfully")
}

// UpdateProduct replaces the product at the given position.
func (h *BusinessHandler) UpdateProduct(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product index must be an integer")
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	business, err := h.uc.UpdateProduct(c.Request().Context(), uid, c.Param("id"), index, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Product updated successfully")
}

// DeleteProduct removes the product at the given position.
func (h *BusinessHandler) DeleteProduct(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product index must be an integer")
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), uid, c.Param("id"), index); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Product deleted successfully")
}

// Watch streams the caller's visible business list as newline-delimited
// JSON until the client disconnects.
func (h *BusinessHandler) Watch(c echo.Context) error {
	uid, role, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	updates, err := h.uc.Watch(c.Request().Context(), uid, role)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/x-ndjson")
	c.Response().WriteHeader(http.StatusOK)

	enc := json.NewEncoder(c.Response())
	for businesses := range updates {
		if err := enc.Encode(businesses); err != nil {
			return errors.WithStack(err)
		}

		c.Response().Flush()
	}

	return nil
}
