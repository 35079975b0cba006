package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-journal-keeper/internal/client"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("go-journal-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage")
	}
	defer storages.Close()

	services, err := service.NewServices(storages.AccountStore, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	app, err := client.NewApp(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
