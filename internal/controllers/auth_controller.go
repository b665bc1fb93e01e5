package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/middleware"
	"dj-site/internal/services"
)

// Register godoc
// @Summary Create an admin account
// @Description Open while no account exists; afterwards an admin session is required
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.RegisterResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register [post]
func Register(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		u, err := auth.Register(c.UserContext(), body, middleware.SessionFrom(c))
		if err != nil {
			return respondError(c, err, "Failed to register user")
		}
		return c.Status(fiber.StatusCreated).JSON(dto.RegisterResult{
			Message: "User registered successfully",
			UserID:  u.ID.Hex(),
		})
	}
}

// Login godoc
// @Summary Log in
// @Description Returns a session token and sets it as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResult
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func Login(auth *services.AuthService, secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		token, claims, err := auth.Login(c.UserContext(), body.Email, body.Password)
		if err != nil {
			return respondError(c, err, "Failed to log in")
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  claims.ExpiresAt.Time,
			HTTPOnly: true,
			Secure:   secureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(dto.LoginResult{
			Message:     "Logged in",
			AccessToken: token,
			ExpiresAt:   claims.ExpiresAt.Unix(),
			User:        claims.User(),
		})
	}
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /api/auth/logout [post]
func Logout(secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   secureCookie,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(dto.MessageResponse{Message: "Logged out"})
	}
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/auth/session [get]
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := middleware.SessionFrom(c)
		if claims == nil {
			return fail(c, fiber.StatusUnauthorized, msgAuthRequired)
		}
		var exp int64
		if claims.ExpiresAt != nil {
			exp = claims.ExpiresAt.Unix()
		}
		return c.JSON(dto.SessionResponse{User: claims.User(), ExpiresAt: exp})
	}
}
