package handler

import (
	"net/http"

	"eventify/internal/delivery/http/response"
	"eventify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler serves the attach-product flow on the event side.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// AttachProduct appends a product to the caller's event and relays a
// notification to the owning business. The response reports the
// notification outcome separately so clients can surface a partial
// failure.
func (h *EventHandler) AttachProduct(c echo.Context) error {
	var input usecase.AttachProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attach input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	result, err := h.uc.AttachProduct(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Product attached successfully")
}
