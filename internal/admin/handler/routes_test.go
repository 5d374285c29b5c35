package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/handler"
	"github.com/ErDev77/pc-configurator-sub001/internal/admin/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_APIRequests(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing cookie yields 401", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage cookie yields 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: "not-a-token"})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret yields 401", func(t *testing.T) {
		forged, err := service.NewTokenService("other-secret").Sign(1, "a@b.com", false, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: forged})
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid cookie passes through", func(t *testing.T) {
		cookie := env.login(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestGuard_PageRequests(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unauthenticated page request redirects to login", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, handler.LoginPath, resp.Header.Get("Location"))
	})

	t.Run("login page itself is not guarded", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, handler.LoginPath, nil))
		require.NoError(t, err)
		assert.NotEqual(t, fiber.StatusFound, resp.StatusCode)
	})

	t.Run("authenticated page request is let through", func(t *testing.T) {
		cookie := env.login(t)

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		// No page route is registered in tests; passing the guard
		// surfaces as a plain 404 instead of a redirect.
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

// Logout must leave the client without a usable session.
func TestLogoutThenProtectedRoute(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cleared := sessionCookie(t, resp)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)

	// A client honoring the cleared cookie sends no session at all.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: cleared.Value})
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
