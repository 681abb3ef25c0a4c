package workers

import (
	"context"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/service"
)

// NewDBProbe runs the database diagnostic every interval and publishes the
// result to reporter and m. Both may be nil.
func NewDBProbe(diagnostics service.DiagnosticsService, interval time.Duration, reporter HealthReporter, m *metrics.Metrics, logger *logger.Logger) Worker {
	var lastOK *bool

	return &periodic{
		name:     "db-probe",
		interval: interval,
		logger:   logger,
		task: func(ctx context.Context) {
			start := time.Now()
			report := diagnostics.ProbeDatabase(ctx)
			duration := time.Since(start)

			if reporter != nil {
				reporter.SetServing(report.OK)
			}
			if m != nil {
				m.ObserveDBProbe(report.OK, duration)
			}

			// log transitions only
			if lastOK != nil && *lastOK == report.OK {
				return
			}
			ok := report.OK
			lastOK = &ok

			if !ok {
				logger.Error().Str("func", "workers.dbProbe").Str("error", report.Error).Msg("database is unavailable")
				return
			}
			logger.Info().Dur("duration", duration).Msg("database is available")
		},
	}
}
