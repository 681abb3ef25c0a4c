package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

type passkeySessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewPasskeySessionRepository(db *DB, logger *logger.Logger) PasskeySessionRepository {
	return &passkeySessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *passkeySessionRepository) CreateSession(ctx context.Context, session models.PasskeySession) error {
	query, args, err := buildInsertSessionQuery(s.builder, session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passkeySessionRepository.CreateSession").
			Str("kind", string(session.Kind)).
			Msg("failed to insert webauthn session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *passkeySessionRepository) GetSession(ctx context.Context, sessionID string) (models.PasskeySession, error) {
	query, args, err := buildSelectSessionQuery(s.builder, sessionID)
	if err != nil {
		return models.PasskeySession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.PasskeySession
		kind    string
	)
	err = s.QueryRowContext(ctx, query, args...).Scan(&session.ID, &kind, &session.UserID, &session.SessionJSON, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasskeySession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.PasskeySession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.Kind = models.SessionKind(kind)

	return session, nil
}

// DeleteSession removes a session. Only one caller can delete a given
// session; the others get ErrSessionNotFound.
func (s *passkeySessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := buildDeleteSessionQuery(s.builder, sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes sessions that expired before the given time
// and returns how many were removed.
func (s *passkeySessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(s.builder, before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
