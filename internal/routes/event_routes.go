package routes

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
	"dj-site/internal/middleware"
)

func SetupRoutesEvent(api fiber.Router, s Services) {
	api.Get("/get-events", controllers.GetEventsHandler(s.Events, s.Settings))

	admin := middleware.RequireAdmin()
	api.Post("/add-event", admin, controllers.AddEventHandler(s.Events))
	api.Put("/update-event", admin, controllers.UpdateEventHandler(s.Events))
	api.Delete("/delete-event", admin, controllers.DeleteEventHandler(s.Events))
	api.Put("/reorder-events", admin, controllers.ReorderEventsHandler(s.Events))
}
