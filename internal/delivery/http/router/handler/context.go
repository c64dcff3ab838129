// Package handler contains the HTTP handlers for the application.
package handler

import (
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// caller extracts the authenticated identity placed on the context by
// the auth middleware. A missing uid means the route was wired without
// Authenticate, which is a programming error surfaced as false.
func caller(c echo.Context) (string, entity.Role, bool) {
	uid, ok := c.Get(middleware.ContextKeyUID).(string)
	if !ok || uid == "" {
		return "", "", false
	}

	role, ok := c.Get(middleware.ContextKeyRole).(entity.Role)
	if !ok {
		role = entity.RoleUser
	}

	return uid, role, true
}
