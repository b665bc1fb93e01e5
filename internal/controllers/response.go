package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"dj-site/dto"
	"dj-site/internal/logger"
	"dj-site/internal/services"
)

const (
	msgInvalidBody        = "Invalid request body"
	msgInvalidCredentials = "Invalid email or password"
	msgAuthRequired       = "Authentication required"
	msgAdminRequired      = "Admin access required"
	msgMethodNotAllowed   = "Method not allowed"
	msgInternal           = "Internal server error"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Message: msg})
}

// respondError maps service errors to status codes. Anything unexpected is
// logged and answered with fallback only.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var (
		ve *services.ValidationError
		nf *services.NotFoundError
		ce *services.ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, ve.Message)
	case errors.As(err, &nf):
		return fail(c, fiber.StatusNotFound, nf.Error())
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Not found")
	case errors.As(err, &ce):
		return fail(c, fiber.StatusConflict, ce.Message)
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, services.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, msgAuthRequired)
	case errors.Is(err, services.ErrForbidden):
		return fail(c, fiber.StatusForbidden, msgAdminRequired)
	}

	rid, _ := c.Locals("requestid").(string)
	log.Error().Err(err).
		Str(logger.FldRequestID, rid).
		Str(logger.FldMethod, c.Method()).
		Str(logger.FldPath, c.Path()).
		Msg(fallback)
	return fail(c, fiber.StatusInternalServerError, fallback)
}

// ErrorHandler renders errors that escape the handlers (routing, body limits,
// middleware rejections) as {message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return respondError(c, err, msgInternal)
	}
	msg := fe.Message
	if fe.Code == fiber.StatusMethodNotAllowed {
		msg = msgMethodNotAllowed
	}
	return fail(c, fe.Code, msg)
}
