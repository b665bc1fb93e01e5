package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dj-site/internal/services"
)

const (
	SessionCookie = "session"
	localsSession = "session"
)

type TokenParser interface {
	ParseToken(token string) (*services.SessionClaims, error)
}

func tokenFrom(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return c.Cookies(SessionCookie)
}

// Session parses a bearer token or the session cookie when present. A token
// that fails to verify leaves the request anonymous; RequireAuth and
// RequireAdmin reject it where a session is needed.
func Session(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFrom(c)
		if token == "" {
			return c.Next()
		}
		if claims, err := parser.ParseToken(token); err == nil {
			c.Locals(localsSession, claims)
		}
		return c.Next()
	}
}

// SessionFrom returns the claims stored by Session, nil when anonymous.
func SessionFrom(c *fiber.Ctx) *services.SessionClaims {
	claims, _ := c.Locals(localsSession).(*services.SessionClaims)
	return claims
}

func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFrom(c) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin needs a valid session and the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := SessionFrom(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}
		if !claims.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}
