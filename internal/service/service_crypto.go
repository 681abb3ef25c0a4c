package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lastwords/last-words-api/internal/crypto"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

type cryptoService struct {
	generateCIK func() (string, error)
	clock       func() time.Time

	logger *logger.Logger
}

func NewCryptoService(logger *logger.Logger) CryptoService {
	return &cryptoService{
		generateCIK: crypto.GenerateCIK,
		clock:       time.Now,
		logger:      logger,
	}
}

// GenerateCIK returns a fresh content integrity key. The key is never logged.
func (c *cryptoService) GenerateCIK(ctx context.Context) (models.CIKResponse, error) {
	cik, err := c.generateCIK()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cryptoService.GenerateCIK").Msg("failed to generate CIK")
		return models.CIKResponse{}, fmt.Errorf("%w: %w", ErrCIKGenerationFailed, err)
	}

	return models.CIKResponse{
		CIK:       cik,
		Timestamp: c.clock().UTC().Format(TimestampLayout),
	}, nil
}
