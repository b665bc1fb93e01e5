package routes

import (
	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
	"dj-site/internal/middleware"
)

func SetupAuth(api fiber.Router, s Services, opts Options) {
	api.Post("/register", controllers.Register(s.Auth))
	// curl -X POST http://127.0.0.1:3000/api/register \
	//   -H "Content-Type: application/json" \
	//   -d '{"email": "dj@example.com", "password": "secret1"}'

	auth := api.Group("/auth")
	auth.Post("/login", controllers.Login(s.Auth, opts.CookieSecure))
	auth.Post("/logout", controllers.Logout(opts.CookieSecure))
	auth.Get("/session", middleware.RequireAuth(), controllers.Session())
}
