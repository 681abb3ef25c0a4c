package http

import (
	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m disables /metrics and the
// request metrics middleware.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		logger:   logger,
	}
}
