package handler

import (
	"errors"
	"time"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/dto"
	"github.com/ErDev77/pc-configurator-sub001/internal/admin/service"
	apperrors "github.com/ErDev77/pc-configurator-sub001/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the HTTP-only cookie carrying the session token.
const SessionCookieName = "admin_auth"

type AuthHandler struct {
	adminService *service.AdminService
	production   bool
}

func NewAuthHandler(adminService *service.AdminService, production bool) *AuthHandler {
	return &AuthHandler{adminService: adminService, production: production}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	token, _, err := h.adminService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		log.Error().Err(err).Msg("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":    claims.AdminID,
		"email": claims.Email,
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.adminService.ChangePassword(c.Context(), claims.AdminID, input); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPasswordTooShort), errors.Is(err, apperrors.ErrWrongPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAdminNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("change password failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) EnableTwoFactor(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input dto.EnableTwoFactorInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.adminService.EnableTwoFactor(c.Context(), claims.AdminID, claims.Email, input.Method); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTwoFAMethod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("enable 2FA failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "verification code sent",
	})
}

func (h *AuthHandler) DisableTwoFactor(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.adminService.DisableTwoFactor(c.Context(), claims.AdminID); err != nil {
		log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("disable 2FA failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "two-factor authentication disabled",
	})
}

func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input dto.VerifyTwoFactorInput
	if err := c.BodyParser(&input); err != nil || input.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "code is required"})
	}

	token, err := h.adminService.VerifyTwoFactor(c.Context(), claims, input.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrCodeInvalidOrUsed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired code"})
		}
		log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("verify 2FA failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) TwoFactorStatus(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	status, err := h.adminService.TwoFactorStatus(c.Context(), claims)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		log.Error().Err(err).Int("admin_id", claims.AdminID).Msg("2FA status failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	sameSite := fiber.CookieSameSiteLaxMode
	if h.production {
		sameSite = fiber.CookieSameSiteStrictMode
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.SessionDuration.Seconds()),
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: sameSite,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	sameSite := fiber.CookieSameSiteLaxMode
	if h.production {
		sameSite = fiber.CookieSameSiteStrictMode
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.production,
		SameSite: sameSite,
	})
}
