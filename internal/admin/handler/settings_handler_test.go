package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/handler"
	"github.com/ErDev77/pc-configurator-sub001/internal/admin/service"
	cataloghandler "github.com/ErDev77/pc-configurator-sub001/internal/catalog/handler"
	"github.com/ErDev77/pc-configurator-sub001/internal/media"
	"github.com/ErDev77/pc-configurator-sub001/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fullEnv wires every route group in the same order main does, so the
// admin guard's prefix coverage of later-registered routes is part of
// what the tests pin down.
type fullEnv struct {
	testEnv
	catalogRepo *mocks.MockCatalogRepository
	store       *mocks.MockUploader
}

func newFullEnv(t *testing.T) *fullEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAdminRepository(ctrl)
	email := mocks.NewMockDirectSender(ctrl)
	chat := mocks.NewMockSender(ctrl)
	catalogRepo := mocks.NewMockCatalogRepository(ctrl)
	store := mocks.NewMockUploader(ctrl)

	tokens := service.NewTokenService("test-secret")
	adminService := service.NewAdminService(repo, tokens, email, chat)
	authHandler := handler.NewAuthHandler(adminService, false)
	guard := handler.NewGuard(tokens)
	settingsHandler := handler.NewSettingsHandler(email, chat)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogRepo, email, chat)
	mediaHandler := media.NewHandler(store)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, guard)
	handler.RegisterSettingsRoutes(app, settingsHandler)
	cataloghandler.RegisterRoutes(app, catalogHandler)
	media.RegisterRoutes(app, mediaHandler)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &fullEnv{
		testEnv:     testEnv{app: app, repo: repo, email: email, chat: chat, adminHash: string(hash)},
		catalogRepo: catalogRepo,
		store:       store,
	}
}

func TestSettingsTriggers(t *testing.T) {
	t.Run("test email", func(t *testing.T) {
		env := newFullEnv(t)
		cookie := env.login(t)

		env.email.EXPECT().Send(gomock.Any(), "Test notification", gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/settings/test-email", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("test telegram", func(t *testing.T) {
		env := newFullEnv(t)
		cookie := env.login(t)

		env.chat.EXPECT().Send(gomock.Any(), "Test notification", gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/settings/test-telegram", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("sender failure yields 500", func(t *testing.T) {
		env := newFullEnv(t)
		cookie := env.login(t)

		env.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		req := httptest.NewRequest(http.MethodPost, "/api/admin/settings/test-email", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

// The settings, storage and export routes are registered after the
// admin guard group; this pins down that the guard still intercepts
// them when the app is wired in main's registration order.
func TestAdminPrefixGuardCoversLaterRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/settings/test-email"},
		{http.MethodPost, "/api/admin/settings/test-telegram"},
		{http.MethodGet, "/api/admin/settings/storage"},
		{http.MethodGet, "/api/admin/orders/export"},
	}

	t.Run("unauthenticated requests are rejected", func(t *testing.T) {
		env := newFullEnv(t)

		// No sender, repo or store expectations: the guard must stop
		// every request before a handler runs.
		for _, r := range routes {
			resp, err := env.app.Test(httptest.NewRequest(r.method, r.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", r.method, r.path)
		}
	})

	t.Run("session cookie grants access", func(t *testing.T) {
		env := newFullEnv(t)
		cookie := env.login(t)

		env.store.EXPECT().Usage(gomock.Any()).Return(&media.StorageUsage{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/settings/storage", nil)
		req.AddCookie(cookie)
		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
