package workers

import (
	"context"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/service"
)

// NewSessionSweeper deletes expired WebAuthn ceremony sessions every
// interval. m may be nil.
func NewSessionSweeper(webAuthn service.WebAuthnService, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) Worker {
	return &periodic{
		name:     "session-sweeper",
		interval: interval,
		logger:   logger,
		task: func(ctx context.Context) {
			deleted, err := webAuthn.SweepExpiredSessions(ctx)
			if err != nil {
				logger.Err(err).Str("func", "workers.sessionSweeper").Msg("expired session sweep failed")
				return
			}
			if deleted == 0 {
				return
			}

			if m != nil {
				m.SessionsSwept.Add(float64(deleted))
			}
			logger.Debug().Int64("deleted", deleted).Msg("expired webauthn sessions deleted")
		},
	}
}
