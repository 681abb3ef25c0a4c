package service

import (
	"context"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewAppInfoService

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Name: "last-words-web", Version: "1.4.0"}

	svc, err := NewAppInfoService(cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_FallsBackToDefault(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "last-words-web"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, DefaultAppVersion, svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyName_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// GetAppVersion / GetServiceName

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "svc", Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
	assert.Equal(t, "svc", svc.GetServiceName(context.Background()))
}

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.App{Name: "svc", Version: version}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "svc", Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
