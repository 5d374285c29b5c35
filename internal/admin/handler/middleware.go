package handler

import (
	"strings"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/service"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "adminClaims"

// LoginPath is the unguarded entry point unauthenticated admins are sent to.
const LoginPath = "/admin/login"

// Guard gates the admin surface. It only verifies the session token;
// 2FA flags are checked by the 2FA endpoints themselves, not here.
type Guard struct {
	tokens service.TokenGenerator
}

func NewGuard(tokens service.TokenGenerator) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == LoginPath {
			return c.Next()
		}

		token := c.Cookies(SessionCookieName)
		if token == "" {
			return g.reject(c)
		}

		claims, err := g.tokens.Verify(token)
		if err != nil {
			return g.reject(c)
		}

		c.Locals(claimsKey, claims)

		return c.Next()
	}
}

// API callers get a 401; page requests are redirected to the login page.
func (g *Guard) reject(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	return c.Redirect(LoginPath, fiber.StatusFound)
}

// ClaimsFromCtx returns the verified session claims stored by the guard,
// or nil when the request never passed it.
func ClaimsFromCtx(c *fiber.Ctx) *service.SessionClaims {
	claims, _ := c.Locals(claimsKey).(*service.SessionClaims)
	return claims
}
