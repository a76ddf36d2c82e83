package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/handler"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/server"
	"github.com/MKhiriev/api-gateway/internal/service"
	"github.com/MKhiriev/api-gateway/internal/store"
	"github.com/MKhiriev/api-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// metricsFlushTimeout bounds the final export of push-based exporters.
const metricsFlushTimeout = 5 * time.Second

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("api-gateway")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.ForEnvironment(cfg.App.Environment)

	log.Debug().Object("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	provider, err := metrics.NewProvider(ctx, cfg.Metrics.Exporter, service.ResolveVersion(cfg.App, build), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics provider")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), metricsFlushTimeout)
		defer cancel()
		if err := provider.Shutdown(flushCtx); err != nil {
			log.Err(err).Msg("error shutting down metrics provider")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.Health, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()
	log.Info().Str("backend", storages.Backend).Msg("dependency probe configured")

	services := service.NewServices(storages, cfg, build, provider.Recorder, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, provider.Recorder, provider.Handler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}
