package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dj-site/internal/controllers"
	"dj-site/internal/logger"
	"dj-site/internal/middleware"
	"dj-site/internal/services"
)

// Services are the handlers' dependencies.
type Services struct {
	Events   *services.EventService
	Messages *services.MessageService
	Settings *services.SettingsService
	Auth     *services.AuthService
	Storage  *services.StorageService
	Layout   *services.LayoutService
	Admin    *services.AdminService
}

type Options struct {
	PublicDir    string
	CookieSecure bool
	CORSOrigins  string
	MaxUploadMB  int
}

// NewApp builds the Fiber app with the shared middleware stack and every
// route registered.
func NewApp(s Services, opts Options, log zerolog.Logger) *fiber.App {
	bodyLimit := opts.MaxUploadMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}
	app := fiber.New(fiber.Config{
		AppName:      "dj-site",
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    bodyLimit << 20,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.Middleware(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: opts.CORSOrigins != "" && opts.CORSOrigins != "*",
	}))

	Setup(app, s, opts)
	return app
}

// Setup registers every route on app. Session parsing runs first so both the
// API and the admin page see the caller's session.
func Setup(app *fiber.App, s Services, opts Options) {
	app.Use(middleware.Session(s.Auth))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")
	SetupAuth(api, s, opts)
	SetupRoutesEvent(api, s)
	SetupRoutesMessage(api, s)
	SetupRoutesSettings(api, s)
	SetupRoutesAdmin(api, s)
	SetupRoutesSite(app, api, s, opts)
}
