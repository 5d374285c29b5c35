package handler

import (
	"github.com/ErDev77/pc-configurator-sub001/internal/notify"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SettingsHandler exposes the admin settings page's integration test
// triggers.
type SettingsHandler struct {
	email notify.Sender
	chat  notify.Sender
}

func NewSettingsHandler(email, chat notify.Sender) *SettingsHandler {
	return &SettingsHandler{email: email, chat: chat}
}

func (h *SettingsHandler) TestEmail(c *fiber.Ctx) error {
	if err := h.email.Send(c.Context(), "Test notification", "This is a test email from the admin panel."); err != nil {
		log.Error().Err(err).Msg("test email failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to send test email"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "test email sent"})
}

func (h *SettingsHandler) TestTelegram(c *fiber.Ctx) error {
	if err := h.chat.Send(c.Context(), "Test notification", "This is a test message from the admin panel."); err != nil {
		log.Error().Err(err).Msg("test telegram message failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to send test message"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "test message sent"})
}

// RegisterSettingsRoutes must run after RegisterRoutes so the admin
// guard already covers the prefix.
func RegisterSettingsRoutes(app *fiber.App, h *SettingsHandler) {
	app.Post("/api/admin/settings/test-email", h.TestEmail)
	app.Post("/api/admin/settings/test-telegram", h.TestTelegram)
}
