package main

import (
	"context"
	"os"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/handler"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/server"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/internal/workers"
	"github.com/lastwords/last-words-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("last-words-api")
	logBuildInfo(log, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if !logger.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("rp_id", cfg.WebAuthn.RPID).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New()
	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, newWorkers(services, handlers, cfg.Workers, m, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newWorkers(services *service.Services, handlers *handler.Handlers, cfg config.Workers, m *metrics.Metrics, log *logger.Logger) *workers.Workers {
	var reporter workers.HealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}

	return workers.NewWorkers(
		workers.NewSessionSweeper(services.WebAuthnService, cfg.SessionSweepInterval, m, log),
		workers.NewDBProbe(services.DiagnosticsService, cfg.DBProbeInterval, reporter, m, log),
	)
}

func logBuildInfo(log *logger.Logger, info models.AppBuildInfo) {
	log.Info().
		Str("build_version", info.BuildVersion()).
		Str("build_date", info.BuildDate()).
		Str("build_commit", info.BuildCommit()).
		Msg("starting")
}
