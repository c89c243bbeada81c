package main

import (
	"context"
	"os"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/handler"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/server"
	"github.com/maxazure/home/internal/service"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("home-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := log.WithContext(context.Background())

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	version := buildVersion
	if version == "" {
		version = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(version, buildDate, buildCommit)
	stamp := buildInfo.VersionResponse()
	log.Info().Str("version", stamp.Version).Str("date", stamp.Date).Str("commit", stamp.Commit).Msg("starting")

	services, err := service.NewServices(db, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminUsername != "" {
		if err = services.UserService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("error seeding the first administrator")
		}
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

