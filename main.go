// @title DJ Site API
// @version 1.0
// @description Events, contact messages and site settings for a DJ promo site.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "dj-site/docs"

	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"dj-site/bootstrap"
	"dj-site/config"
	"dj-site/database"
	"dj-site/internal/logger"
	"dj-site/internal/repository"
	"dj-site/internal/repository/memrepo"
	"dj-site/internal/routes"
	"dj-site/internal/services"
)

type stores struct {
	events   repository.EventRepository
	messages repository.MessageRepository
	settings repository.SettingsRepository
	users    repository.UserRepository
	objects  repository.ObjectStore
	cleanup  repository.CleanupRepository
	diag     repository.Diagnostics
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not configured yet
		log.Fatal().Err(err).Msg("load config")
	}
	appLog := logger.Init(cfg.LogLevel, cfg.LogFormat)

	var st stores
	switch cfg.DBDriver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory, data is lost on restart")
		st = stores{
			events:   memrepo.NewEvents(),
			messages: memrepo.NewMessages(),
			settings: memrepo.NewSettings(),
			users:    memrepo.NewUsers(),
			objects:  memrepo.NewObjects(),
			cleanup:  memrepo.NewCleanup(),
			diag:     memrepo.Diagnostics{},
		}
	default:
		client, db, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongo")
		}
		defer database.DisconnectMongo(client)

		idxCtx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
		err = bootstrap.EnsureIndexes(idxCtx, db)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("ensure indexes")
		}

		st = stores{
			events:   repository.NewMongoEventRepository(db),
			messages: repository.NewMongoMessageRepository(db),
			settings: repository.NewMongoSettingsRepository(db),
			users:    repository.NewMongoUserRepository(db),
			objects:  repository.NewGridFSImageStore(db, cfg.GridFSBucket),
			cleanup:  repository.NewMongoCleanupRepository(db),
			diag:     repository.NewMongoDiagnostics(db),
		}
	}

	storage := services.NewStorageService(st.objects, st.cleanup, cfg.MediaBaseURL, cfg.DBTimeout)
	events := services.NewEventService(st.events, storage, cfg.DBTimeout)
	messages := services.NewMessageService(st.messages, cfg.DBTimeout)
	settings := services.NewSettingsService(st.settings, cfg.SiteDefaults, cfg.DBTimeout)
	auth, err := services.NewAuthService(st.users, cfg.JWTSecret, cfg.SessionTTL, cfg.BcryptCost, cfg.DBTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("auth service")
	}

	// retry image deletions left over from the last run
	sweepCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if removed, failed, err := storage.Sweep(sweepCtx); err != nil {
		log.Error().Err(err).Msg("startup storage sweep")
	} else if removed+failed > 0 {
		log.Info().Int("removed", removed).Int("failed", failed).Msg("startup storage sweep")
	}
	cancel()

	app := routes.NewApp(routes.Services{
		Events:   events,
		Messages: messages,
		Settings: settings,
		Auth:     auth,
		Storage:  storage,
		Layout:   services.NewLayoutService(events, settings),
		Admin:    services.NewAdminService(events, settings, messages, st.diag, cfg.DBTimeout),
	}, routes.Options{
		PublicDir:    cfg.PublicDir,
		CookieSecure: cfg.CookieSecure,
		CORSOrigins:  cfg.CORSOrigins,
		MaxUploadMB:  cfg.MaxUploadMB,
	}, appLog)

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.SetupStatic(app, cfg.PublicDir)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("listen")
	}
}
