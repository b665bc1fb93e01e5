package controllers

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/services"
)

// GetSystemSettingsHandler godoc
// @Summary Full site settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/get-system-settings [get]
func GetSystemSettingsHandler(svc *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch system settings")
		}
		return c.JSON(dto.SettingsResponse{Settings: s})
	}
}

// GetPublicSettingsHandler godoc
// @Summary Public site settings (music links only)
// @Tags settings
// @Produce json
// @Success 200 {object} dto.PublicSettingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/get-public-settings [get]
func GetPublicSettingsHandler(svc *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Public(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to fetch public settings")
		}
		return c.JSON(dto.PublicSettingsResponse{Settings: s})
	}
}

// UpdateSystemSettingsHandler godoc
// @Summary Save site settings
// @Description Upserts the settings document; empty fields take their default
// @Tags settings
// @Accept json
// @Produce json
// @Param body body dto.SettingsUpdateRequest true "Settings"
// @Success 200 {object} dto.SettingsUpdateResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/update-system-settings [put]
func UpdateSystemSettingsHandler(svc *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SettingsUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, msgInvalidBody)
		}
		s, err := svc.Update(c.UserContext(), body)
		if err != nil {
			return respondError(c, err, "Failed to update system settings")
		}
		return c.JSON(dto.SettingsUpdateResult{
			Message:  "System settings updated successfully",
			Settings: s,
		})
	}
}
