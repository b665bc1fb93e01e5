package routes

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
	"dj-site/internal/middleware"
)

func SetupRoutesAdmin(api fiber.Router, s Services) {
	admin := middleware.RequireAdmin()
	api.Get("/test-mongodb", admin, controllers.TestMongoDBHandler(s.Admin))

	group := api.Group("/admin", admin)
	group.Get("/dashboard", controllers.DashboardHandler(s.Admin))
	group.Post("/storage-sweep", controllers.StorageSweepHandler(s.Storage))
}
