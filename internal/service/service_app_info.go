package service

import (
	"context"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/logger"
)

// DefaultAppVersion is reported when no version was configured.
const DefaultAppVersion = "1.0.0"

type appInfoService struct {
	appVersion  string
	serviceName string

	logger *logger.Logger
}

// NewAppInfoService resolves the version once. An empty cfg.Version falls
// back to DefaultAppVersion; an empty service name is an error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Name == "" {
		return nil, ErrInvalidDataProvided
	}

	version := cfg.Version
	if version == "" {
		logger.Warn().Str("func", "NewAppInfoService").Err(ErrVersionIsNotSpecified).
			Str("fallback", DefaultAppVersion).Msg("using default version")
		version = DefaultAppVersion
	}

	return &appInfoService{
		appVersion:  version,
		serviceName: cfg.Name,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetServiceName(ctx context.Context) string {
	return s.serviceName
}
