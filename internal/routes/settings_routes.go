package routes

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
	"dj-site/internal/middleware"
)

func SetupRoutesSettings(api fiber.Router, s Services) {
	api.Get("/get-public-settings", controllers.GetPublicSettingsHandler(s.Settings))

	admin := middleware.RequireAdmin()
	api.Get("/get-system-settings", admin, controllers.GetSystemSettingsHandler(s.Settings))
	api.Put("/update-system-settings", admin, controllers.UpdateSystemSettingsHandler(s.Settings))
}
