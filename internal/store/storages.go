package store

import "github.com/lastwords/last-words-api/internal/logger"

// Storages groups every repository built on a single [DB].
type Storages struct {
	UserRepository           UserRepository
	PasskeyRepository        PasskeyRepository
	PasskeySessionRepository PasskeySessionRepository
	WillRepository           WillRepository
	SecretRepository         SecretRepository
	DiagnosticsRepository    DiagnosticsRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Str("func", "NewStorages").Msg("creating storages")

	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		PasskeyRepository:        NewPasskeyRepository(db, log),
		PasskeySessionRepository: NewPasskeySessionRepository(db, log),
		WillRepository:           NewWillRepository(db, log),
		SecretRepository:         NewSecretRepository(db, log),
		DiagnosticsRepository:    NewDiagnosticsRepository(db, log),
	}
}
