package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventify/internal/domain/entity"
	"eventify/internal/domain/service"
	mockSvc "eventify/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		Verify(mock.Anything, "valid-token").
		Return(&service.Identity{UID: "user-1", Role: entity.RoleServiceProvider}, nil)

	m := NewAuthMiddleware(verifier)
	c, _ := newAuthTestContext("Bearer valid-token")

	var calledUID any
	var calledRole any
	err := m.Authenticate(func(c echo.Context) error {
		calledUID = c.Get(ContextKeyUID)
		calledRole = c.Get(ContextKeyRole)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "user-1", calledUID)
	assert.Equal(t, entity.RoleServiceProvider, calledRole)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t))
	c, rec := newAuthTestContext("")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t))
	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		Verify(mock.Anything, "expired").
		Return(nil, assert.AnError)

	m := NewAuthMiddleware(verifier)
	c, rec := newAuthTestContext("Bearer expired")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t))

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	guarded := m.RequireRole(entity.RoleServiceProvider)(next)

	c, rec := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleServiceProvider)
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleUser)
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Role never set: the guard fails closed.
	c, rec = newAuthTestContext("")
	require.NoError(t, guarded(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
