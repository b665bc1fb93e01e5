package controllers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"dj-site/dto"
	"dj-site/internal/middleware"
	"dj-site/internal/services"
)

// DashboardHandler godoc
// @Summary Admin console data
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/dashboard [get]
func DashboardHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Dashboard(c.UserContext())
		if err != nil {
			return respondError(c, err, "Failed to load dashboard")
		}
		return c.JSON(res)
	}
}

// StorageSweepHandler godoc
// @Summary Retry pending image deletions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SweepResult
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/admin/storage-sweep [post]
func StorageSweepHandler(storage *services.StorageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		removed, failed, err := storage.Sweep(c.UserContext())
		if err != nil {
			return respondError(c, err, "Storage sweep failed")
		}
		return c.JSON(dto.SweepResult{Message: "Storage sweep finished", Removed: removed, Failed: failed})
	}
}

// TestMongoDBHandler godoc
// @Summary Database connection check
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DiagnosticsResult
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/test-mongodb [get]
func TestMongoDBHandler(svc *services.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Diagnostics(c.UserContext())
		if err != nil {
			return respondError(c, err, "MongoDB connection test failed")
		}
		return c.JSON(res)
	}
}

// AdminPageHandler serves the admin console page to admins and sends
// everyone else to the login page.
func AdminPageHandler(publicDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !middleware.SessionFrom(c).IsAdmin() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.SendFile(filepath.Join(publicDir, "admin.html"))
	}
}
