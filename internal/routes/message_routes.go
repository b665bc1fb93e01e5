package routes

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
	"dj-site/internal/middleware"
)

func SetupRoutesMessage(api fiber.Router, s Services) {
	api.Post("/add-message", controllers.AddMessageHandler(s.Messages))

	admin := middleware.RequireAdmin()
	list := controllers.ListMessagesHandler(s.Messages)
	api.Get("/all-messages", admin, list)
	api.Get("/get-messages", admin, list)
	api.Delete("/delete-message", admin, controllers.DeleteMessageHandler(s.Messages))
	api.Put("/update-message-status", admin, controllers.UpdateMessageStatusHandler(s.Messages))
}
