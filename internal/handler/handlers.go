package handler

import (
	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/handler/grpc"
	"github.com/lastwords/last-words-api/internal/handler/http"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
