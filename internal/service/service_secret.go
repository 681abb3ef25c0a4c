package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lastwords/last-words-api/internal/audit"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/internal/validators"
	"github.com/lastwords/last-words-api/models"
)

// DefaultSecretPriority is assigned to secrets created without a priority.
const DefaultSecretPriority = 1

// secretService scopes every secret operation to wills owned by the caller.
type secretService struct {
	secrets     store.SecretRepository
	wills       store.WillRepository
	validator   validators.Validator
	idGenerator idGenerator
	clock       func() time.Time

	logger *logger.Logger
}

func NewSecretService(secrets store.SecretRepository, wills store.WillRepository, logger *logger.Logger) SecretService {
	return &secretService{
		secrets:     secrets,
		wills:       wills,
		validator:   validators.NewWillValidator(),
		idGenerator: utils.NewUUIDGenerator(),
		clock:       time.Now,
		logger:      logger,
	}
}

func (s *secretService) CreateSecret(ctx context.Context, userID, willID string, secret models.Secret) (models.Secret, error) {
	if err := s.validator.Validate(ctx, secret); err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.checkWillOwner(ctx, willID, userID); err != nil {
		return models.Secret{}, err
	}

	now := s.clock().UTC()
	secret.ID = s.idGenerator.Generate()
	secret.WillID = willID
	secret.CreatedAt = now
	secret.UpdatedAt = now
	if secret.Priority == 0 {
		secret.Priority = DefaultSecretPriority
	}
	if secret.RequiresWebAuthn == nil {
		secret.RequiresWebAuthn = boolPtr(true)
	}
	if secret.AccessLevel == "" {
		secret.AccessLevel = models.AccessLevelPrivate
	}

	if err := s.secrets.CreateSecret(ctx, secret); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "secretService.CreateSecret").Str("will_id", willID).Msg("secret creation failed")
		return models.Secret{}, fmt.Errorf("secret creation failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntitySecret, secret.ID, userID, audit.AccessWrite)
	return secret, nil
}

func (s *secretService) GetSecret(ctx context.Context, secretID, userID string) (models.Secret, error) {
	secret, err := s.secrets.GetSecret(ctx, secretID, userID)
	if errors.Is(err, store.ErrSecretNotFound) {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrSecretNotFound, err)
	}
	if err != nil {
		return models.Secret{}, fmt.Errorf("secret lookup failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntitySecret, secretID, userID, audit.AccessRead)
	return secret, nil
}

func (s *secretService) ListSecrets(ctx context.Context, userID, willID string, page models.Pagination) (models.ListSecretsResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return models.ListSecretsResponse{}, err
	}
	if err = s.checkWillOwner(ctx, willID, userID); err != nil {
		return models.ListSecretsResponse{}, err
	}

	secrets, err := s.secrets.ListSecrets(ctx, willID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "secretService.ListSecrets").Str("will_id", willID).Msg("secret listing failed")
		return models.ListSecretsResponse{}, fmt.Errorf("secret listing failed: %w", err)
	}
	if secrets == nil {
		secrets = []models.Secret{}
	}

	return models.ListSecretsResponse{Secrets: secrets, Length: len(secrets)}, nil
}

func (s *secretService) DeleteSecret(ctx context.Context, secretID, userID string) error {
	err := s.secrets.DeleteSecret(ctx, secretID, userID)
	if errors.Is(err, store.ErrSecretNotFound) {
		return fmt.Errorf("%w: %w", ErrSecretNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("secret deletion failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntitySecret, secretID, userID, audit.AccessDelete)
	return nil
}

// checkWillOwner reports a will of another user the same way as a missing one.
func (s *secretService) checkWillOwner(ctx context.Context, willID, userID string) error {
	_, err := s.wills.GetWill(ctx, willID, userID)
	if errors.Is(err, store.ErrWillNotFound) {
		return fmt.Errorf("%w: %w", ErrWillNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("will lookup failed: %w", err)
	}
	return nil
}
