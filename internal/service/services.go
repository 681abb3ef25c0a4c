package service

import (
	"fmt"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/crypto"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/store"
)

type Services struct {
	AppInfoService     AppInfoService
	AuthService        AuthService
	DiagnosticsService DiagnosticsService
	WebAuthnService    WebAuthnService
	WillService        WillService
	SecretService      SecretService
	CryptoService      CryptoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(
		storages.UserRepository,
		crypto.NewArgon2Hasher(),
		crypto.NewEmailHasher(cfg.App.EmailHMACKey),
		cfg.Auth,
		logger,
	)

	webAuthnService, err := NewWebAuthnService(
		storages.UserRepository,
		storages.PasskeyRepository,
		storages.PasskeySessionRepository,
		authService,
		cfg.WebAuthn,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating webauthn service: %w", err)
	}

	return &Services{
		AppInfoService:     appInfoService,
		AuthService:        authService,
		DiagnosticsService: NewDiagnosticsService(appInfoService, storages.DiagnosticsRepository, logger),
		WebAuthnService:    webAuthnService,
		WillService:        NewWillService(storages.WillRepository, logger),
		SecretService:      NewSecretService(storages.SecretRepository, storages.WillRepository, logger),
		CryptoService:      NewCryptoService(logger),
	}, nil
}
