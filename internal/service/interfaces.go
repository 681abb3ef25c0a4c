package service

import (
	"context"

	"github.com/lastwords/last-words-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users and manages access tokens.
type AuthService interface {
	// Register creates an account and returns a token for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// Login checks the credentials and returns a fresh token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	CreateToken(ctx context.Context, user models.AuthenticatedUser) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServiceName(ctx context.Context) string
}

// DiagnosticsService backs the health and diagnostic routes.
// Environment based reports read the process environment on every call.
type DiagnosticsService interface {
	Health(ctx context.Context) models.HealthStatus
	DebugEnv(ctx context.Context) models.DebugEnvReport
	ProbeDatabase(ctx context.Context) models.DBDiagnostics
	EnvPresence(ctx context.Context) models.EnvPresenceReport
	ConfigReport(ctx context.Context) models.ConfigReport
}

// WebAuthnService runs passkey registration and assertion ceremonies for an
// already authenticated user.
type WebAuthnService interface {
	BeginRegistration(ctx context.Context, user models.AuthenticatedUser) (models.CeremonyOptions, error)
	FinishRegistration(ctx context.Context, user models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.RegistrationResult, error)
	BeginLogin(ctx context.Context, user models.AuthenticatedUser) (models.CeremonyOptions, error)
	FinishLogin(ctx context.Context, user models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.AssertionResult, error)

	// SweepExpiredSessions deletes ceremony sessions past their expiry and
	// returns how many were removed.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

type WillService interface {
	CreateWill(ctx context.Context, userID string, will models.Will) (models.Will, error)
	GetWill(ctx context.Context, willID, userID string) (models.Will, error)
	ListWills(ctx context.Context, userID string, page models.Pagination) (models.ListWillsResponse, error)
	DeleteWill(ctx context.Context, willID, userID string) error
}

type SecretService interface {
	CreateSecret(ctx context.Context, userID, willID string, secret models.Secret) (models.Secret, error)
	GetSecret(ctx context.Context, secretID, userID string) (models.Secret, error)
	ListSecrets(ctx context.Context, userID, willID string, page models.Pagination) (models.ListSecretsResponse, error)
	DeleteSecret(ctx context.Context, secretID, userID string) error
}

type CryptoService interface {
	GenerateCIK(ctx context.Context) (models.CIKResponse, error)
}
