package store

import (
	"context"
	"time"

	"github.com/lastwords/last-words-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmailHMAC(ctx context.Context, emailHMAC string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

type PasskeyRepository interface {
	CreateCredential(ctx context.Context, credential models.PasskeyCredential) error
	ListCredentials(ctx context.Context, userID string) ([]models.PasskeyCredential, error)
	UpdateCredential(ctx context.Context, credential models.PasskeyCredential) error
}

type PasskeySessionRepository interface {
	CreateSession(ctx context.Context, session models.PasskeySession) error
	GetSession(ctx context.Context, sessionID string) (models.PasskeySession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

type WillRepository interface {
	CreateWill(ctx context.Context, will models.Will) error
	GetWill(ctx context.Context, willID, userID string) (models.Will, error)
	ListWills(ctx context.Context, userID string, page models.Pagination) ([]models.Will, error)
	DeleteWill(ctx context.Context, willID, userID string) error
}

type SecretRepository interface {
	CreateSecret(ctx context.Context, secret models.Secret) error
	GetSecret(ctx context.Context, secretID, userID string) (models.Secret, error)
	ListSecrets(ctx context.Context, willID string, page models.Pagination) ([]models.Secret, error)
	DeleteSecret(ctx context.Context, secretID, userID string) error
}

// DiagnosticsRepository runs the database connectivity probe.
type DiagnosticsRepository interface {
	SelectOne(ctx context.Context) ([]map[string]any, error)
}
