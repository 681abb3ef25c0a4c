package workers

import (
	"context"
	"sync"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// periodic runs task once at start and then every interval until the
// context is cancelled.
type periodic struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger
}

func (p *periodic) Run(ctx context.Context) {
	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	defer p.logger.Info().Str("worker", p.name).Msg("worker stopped")

	p.task(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			p.task(ctx)
		}
	}
}
