package handler

import (
	"encoding/json"
	"net/http"

	"eventify/internal/delivery/http/response"
	"eventify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler serves the provider-side notification inbox.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler,
// injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns every notification addressed to the caller's businesses.
func (h *NotificationHandler) List(c echo.Context) error {
	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	notifications, err := h.uc.ListForProvider(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// Watch streams the caller's unread notifications as newline-delimited
// JSON: one array per line, re-emitted on every change. The stream ends
// when the client disconnects.
func (h *NotificationHandler) Watch(c echo.Context) error {
	uid, _, ok := caller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	updates, err := h.uc.WatchForProvider(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/x-ndjson")
	c.Response().WriteHeader(http.StatusOK)

	enc := json.NewEncoder(c.Response())
	for notifications := range updates {
		if err := enc.Encode(notifications); err != nil {
			return errors.WithStack(err)
		}

		c.Response().Flush()
	}

	return nil
}

// MarkRead acknowledges a notification.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.uc.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Notification marked as read")
}
