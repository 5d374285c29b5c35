package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, guard *Guard) {
	app.Post("/api/admin/login", h.Login)
	app.Post("/api/admin/logout", h.Logout)

	admin := app.Group("/api/admin", guard.Protect())
	admin.Get("/me", h.Me)
	admin.Post("/change-password", h.ChangePassword)

	twofa := admin.Group("/2fa")
	twofa.Post("/enable", h.EnableTwoFactor)
	twofa.Post("/disable", h.DisableTwoFactor)
	twofa.Post("/verify", h.VerifyTwoFactor)
	twofa.Get("/status", h.TwoFactorStatus)

	// Admin pages: unauthenticated requests are redirected to the login page.
	app.Use("/admin", guard.Protect())
}
