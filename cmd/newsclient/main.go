package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-summary-news/internal/adapter"
	"github.com/MKhiriev/go-summary-news/internal/client"
	"github.com/MKhiriev/go-summary-news/internal/config"
	"github.com/MKhiriev/go-summary-news/internal/logger"
	"github.com/MKhiriev/go-summary-news/internal/service"
	"github.com/MKhiriev/go-summary-news/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-summary-news").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-summary-news", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	headlines, err := adapter.NewHTTPHeadlineSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create headline adapter")
	}

	var enrichment adapter.EnrichmentSource
	if !cfg.Adapter.Enrichment.Disabled {
		enrichment, err = adapter.NewHTTPEnrichmentSource(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create enrichment adapter")
		}
	}

	services := service.NewServices(storages, headlines, enrichment, cfg.Adapter.Enrichment.Concurrency, log)

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
