// Command djadmin runs maintenance tasks against the configured database:
// creating admin accounts and retrying pending image deletions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"dj-site/bootstrap"
	"dj-site/config"
	"dj-site/database"
	"dj-site/dto"
	"dj-site/internal/logger"
	"dj-site/internal/models"
	"dj-site/internal/repository"
	"dj-site/internal/services"
)

func main() {
	var (
		email    = flag.String("email", "", "email of the admin account to create")
		password = flag.String("password", os.Getenv("DJADMIN_PASSWORD"), "password for the new account (or DJADMIN_PASSWORD)")
		sweep    = flag.Bool("sweep", false, "retry pending image deletions")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall timeout")
	)
	flag.Parse()

	if *email == "" && !*sweep {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.DBDriver != config.DriverMongo {
		log.Fatal().Str("driver", cfg.DBDriver).Msg("djadmin needs DB_DRIVER=mongo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer database.DisconnectMongo(client)

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	if *email != "" {
		auth, err := services.NewAuthService(repository.NewMongoUserRepository(db), cfg.JWTSecret, cfg.SessionTTL, cfg.BcryptCost, cfg.DBTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("auth service")
		}
		// the operator holds the database credentials, so act as an admin
		operator := &services.SessionClaims{Role: models.RoleAdmin}
		u, err := auth.Register(ctx, dto.RegisterRequest{Email: *email, Password: *password}, operator)
		var ve *services.ValidationError
		var ce *services.ConflictError
		switch {
		case errors.As(err, &ve):
			log.Fatal().Msg(ve.Message)
		case errors.As(err, &ce):
			log.Fatal().Msg(ce.Message)
		case err != nil:
			log.Fatal().Err(err).Msg("create admin")
		}
		fmt.Printf("created admin %s (%s)\n", u.Email, u.ID.Hex())
	}

	if *sweep {
		storage := services.NewStorageService(
			repository.NewGridFSImageStore(db, cfg.GridFSBucket),
			repository.NewMongoCleanupRepository(db),
			cfg.MediaBaseURL,
			cfg.DBTimeout,
		)
		removed, failed, err := storage.Sweep(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("storage sweep")
		}
		fmt.Printf("storage sweep: %d removed, %d still failing\n", removed, failed)
	}
}
