// Package middleware contains the HTTP middleware for authentication,
// authorization and error translation.
package middleware

import (
	"strings"

	"eventify/internal/delivery/http/response"
	"eventify/internal/domain/entity"
	"eventify/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware for handlers to consume.
const (
	ContextKeyUID  = "uid"
	ContextKeyRole = "role"
)

// AuthMiddleware validates identity-provider tokens and puts the
// caller's uid and role on the request context. The role claim is
// trusted as delivered; this subsystem adds no checks of its own beyond
// role gating.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Bearer token on every request it guards.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(ContextKeyUID, identity.UID)
		c.Set(ContextKeyRole, identity.Role)

		return next(c)
	}
}

// RequireRole checks that the caller carries the given role. It must be
// used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != required {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}
