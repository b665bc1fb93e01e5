package routes

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dj-site/internal/controllers"
)

// adminPage is only reachable through the gated /admin route.
const adminPage = "admin.html"

// SetupRoutesSite registers the page-facing routes: the screen layout, stored
// images and the admin page gate.
func SetupRoutesSite(app *fiber.App, api fiber.Router, s Services, opts Options) {
	api.Get("/screen-layout", controllers.ScreenLayoutHandler(s.Layout))

	app.Get("/media/*", controllers.MediaHandler(s.Storage))
	app.Get("/admin", controllers.AdminPageHandler(opts.PublicDir))
}

// SetupStatic serves the frontend from publicDir. Register it last so API
// routes win.
func SetupStatic(app *fiber.App, publicDir string) {
	app.Static("/", publicDir, fiber.Static{
		Next: func(c *fiber.Ctx) bool {
			return strings.EqualFold(path.Base(c.Path()), adminPage)
		},
	})
}
