package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

// secretRepository is the SQL implementation of [SecretRepository].
// Ownership of a secret is derived from its will.
type secretRepository struct {
	*DB
	logger *logger.Logger
}

func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	return &secretRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *secretRepository) CreateSecret(ctx context.Context, secret models.Secret) error {
	query, args, err := buildInsertSecretQuery(s.builder, secret)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "secretRepository.CreateSecret").
			Str("will_id", secret.WillID).
			Msg("failed to insert secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *secretRepository) GetSecret(ctx context.Context, secretID, userID string) (models.Secret, error) {
	query, args, err := buildSelectSecretQuery(s.builder, secretID, userID)
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secret, err := scanSecret(s.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Secret{}, ErrSecretNotFound
	}
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// ListSecrets returns a page of the will's secrets, highest priority first.
// The caller is responsible for checking that the will is owned by the user.
func (s *secretRepository) ListSecrets(ctx context.Context, willID string, page models.Pagination) ([]models.Secret, error) {
	query, args, err := buildSelectSecretsQuery(s.builder, willID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "secretRepository.ListSecrets").
			Str("will_id", willID).
			Msg("failed to execute query for secrets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	secrets := make([]models.Secret, 0, page.Limit)
	for rows.Next() {
		secret, err := scanSecret(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		secrets = append(secrets, secret)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return secrets, nil
}

func (s *secretRepository) DeleteSecret(ctx context.Context, secretID, userID string) error {
	query, args, err := buildDeleteSecretQuery(s.builder, secretID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecretNotFound
	}

	return nil
}

func scanSecret(row rowScanner) (models.Secret, error) {
	var (
		secret           models.Secret
		requiresWebAuthn bool
	)
	err := row.Scan(
		&secret.ID,
		&secret.WillID,
		&secret.EncryptedTitle,
		&secret.EncryptedContent,
		&secret.SecretType,
		&secret.Category,
		&secret.Priority,
		&requiresWebAuthn,
		&secret.AccessLevel,
		&secret.CreatedAt,
		&secret.UpdatedAt,
	)
	secret.RequiresWebAuthn = &requiresWebAuthn

	return secret, err
}
