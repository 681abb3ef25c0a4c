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

type willService struct {
	repository  store.WillRepository
	validator   validators.Validator
	idGenerator idGenerator
	clock       func() time.Time

	logger *logger.Logger
}

func NewWillService(repository store.WillRepository, logger *logger.Logger) WillService {
	return &willService{
		repository:  repository,
		validator:   validators.NewWillValidator(),
		idGenerator: utils.NewUUIDGenerator(),
		clock:       time.Now,
		logger:      logger,
	}
}

// CreateWill stores a new will for userID. Identity, ownership and
// timestamps are always assigned here; RequiresWebAuthn, AccessLevel and
// Status fall back to true, PRIVATE and DRAFT.
func (w *willService) CreateWill(ctx context.Context, userID string, will models.Will) (models.Will, error) {
	if userID == "" {
		return models.Will{}, ErrInvalidDataProvided
	}
	if err := w.validator.Validate(ctx, will); err != nil {
		return models.Will{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := w.clock().UTC()
	will.ID = w.idGenerator.Generate()
	will.UserID = userID
	will.CreatedAt = now
	will.UpdatedAt = now
	if will.RequiresWebAuthn == nil {
		will.RequiresWebAuthn = boolPtr(true)
	}
	if will.AccessLevel == "" {
		will.AccessLevel = models.AccessLevelPrivate
	}
	if will.Status == "" {
		will.Status = models.WillStatusDraft
	}

	if err := w.repository.CreateWill(ctx, will); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "willService.CreateWill").Str("user_id", userID).Msg("will creation failed")
		return models.Will{}, fmt.Errorf("will creation failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntityWill, will.ID, userID, audit.AccessWrite)
	return will, nil
}

func (w *willService) GetWill(ctx context.Context, willID, userID string) (models.Will, error) {
	will, err := w.repository.GetWill(ctx, willID, userID)
	if errors.Is(err, store.ErrWillNotFound) {
		return models.Will{}, fmt.Errorf("%w: %w", ErrWillNotFound, err)
	}
	if err != nil {
		return models.Will{}, fmt.Errorf("will lookup failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntityWill, willID, userID, audit.AccessRead)
	return will, nil
}

func (w *willService) ListWills(ctx context.Context, userID string, page models.Pagination) (models.ListWillsResponse, error) {
	page, err := normalizePage(page)
	if err != nil {
		return models.ListWillsResponse{}, err
	}

	wills, err := w.repository.ListWills(ctx, userID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "willService.ListWills").Str("user_id", userID).Msg("will listing failed")
		return models.ListWillsResponse{}, fmt.Errorf("will listing failed: %w", err)
	}
	if wills == nil {
		wills = []models.Will{}
	}

	return models.ListWillsResponse{Wills: wills, Limit: page.Limit, Offset: page.Offset}, nil
}

// DeleteWill removes the will and all of its secrets.
func (w *willService) DeleteWill(ctx context.Context, willID, userID string) error {
	err := w.repository.DeleteWill(ctx, willID, userID)
	if errors.Is(err, store.ErrWillNotFound) {
		return fmt.Errorf("%w: %w", ErrWillNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("will deletion failed: %w", err)
	}

	audit.DataAccess(ctx, audit.EntityWill, willID, userID, audit.AccessDelete)
	return nil
}

func boolPtr(v bool) *bool {
	return &v
}
