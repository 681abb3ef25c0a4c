package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

type passkeyRepository struct {
	*DB
	logger *logger.Logger
}

func NewPasskeyRepository(db *DB, logger *logger.Logger) PasskeyRepository {
	return &passkeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *passkeyRepository) CreateCredential(ctx context.Context, credential models.PasskeyCredential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(p.builder, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		if p.errorClassificator.IsUniqueViolation(err) {
			return ErrCredentialAlreadyExists
		}
		log.Err(err).
			Str("func", "passkeyRepository.CreateCredential").
			Str("user_id", credential.UserID).
			Msg("failed to insert passkey credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListCredentials returns the user's credentials, oldest first. An empty
// slice means the user has no authenticator.
func (p *passkeyRepository) ListCredentials(ctx context.Context, userID string) ([]models.PasskeyCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsByUserQuery(p.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passkeyRepository.ListCredentials").
			Str("user_id", userID).
			Msg("failed to execute query for passkey credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.PasskeyCredential, 0, 2)
	for rows.Next() {
		var (
			cred     models.PasskeyCredential
			lastUsed sql.NullTime
		)
		if err := rows.Scan(&cred.CredentialID, &cred.UserID, &cred.CredentialJSON, &cred.CreatedAt, &cred.UpdatedAt, &lastUsed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if lastUsed.Valid {
			cred.LastUsedAt = &lastUsed.Time
		}
		credentials = append(credentials, cred)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// UpdateCredential stores the refreshed credential JSON (sign counter,
// flags) after a successful assertion.
func (p *passkeyRepository) UpdateCredential(ctx context.Context, credential models.PasskeyCredential) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialQuery(p.builder, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "passkeyRepository.UpdateCredential").
			Str("credential_id", credential.CredentialID).
			Msg("failed to update passkey credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
