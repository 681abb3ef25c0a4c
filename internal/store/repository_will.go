package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

// willRepository is the SQL implementation of [WillRepository]. Every read
// and delete is scoped by user_id so foreign wills look like missing ones.
type willRepository struct {
	*DB
	logger *logger.Logger
}

func NewWillRepository(db *DB, logger *logger.Logger) WillRepository {
	return &willRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *willRepository) CreateWill(ctx context.Context, will models.Will) error {
	query, args, err := buildInsertWillQuery(w.builder, will)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = w.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "willRepository.CreateWill").
			Str("user_id", will.UserID).
			Msg("failed to insert will")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (w *willRepository) GetWill(ctx context.Context, willID, userID string) (models.Will, error) {
	query, args, err := buildSelectWillQuery(w.builder, willID, userID)
	if err != nil {
		return models.Will{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	will, err := scanWill(w.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Will{}, ErrWillNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "willRepository.GetWill").
			Str("will_id", willID).
			Msg("failed to scan will row")
		return models.Will{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return will, nil
}

func (w *willRepository) ListWills(ctx context.Context, userID string, page models.Pagination) ([]models.Will, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWillsQuery(w.builder, userID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := w.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "willRepository.ListWills").
			Str("user_id", userID).
			Msg("failed to execute query for wills")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	wills := make([]models.Will, 0, page.Limit)
	for rows.Next() {
		will, err := scanWill(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		wills = append(wills, will)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return wills, nil
}

// DeleteWill removes the will and its secrets in one transaction.
func (w *willRepository) DeleteWill(ctx context.Context, willID, userID string) error {
	log := logger.FromContext(ctx)

	secretsQuery, secretsArgs, err := buildDeleteWillSecretsQuery(w.builder, willID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	willQuery, willArgs, err := buildDeleteWillQuery(w.builder, willID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := w.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "willRepository.DeleteWill").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, secretsQuery, secretsArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, willQuery, willArgs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWillNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "willRepository.DeleteWill").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWill(row rowScanner) (models.Will, error) {
	var (
		will             models.Will
		requiresWebAuthn bool
	)
	err := row.Scan(
		&will.ID,
		&will.UserID,
		&will.EncryptedTitle,
		&will.EncryptedDescription,
		&will.EncryptedContent,
		&requiresWebAuthn,
		&will.AccessLevel,
		&will.Status,
		&will.CreatedAt,
		&will.UpdatedAt,
	)
	will.RequiresWebAuthn = &requiresWebAuthn

	return will, err
}
