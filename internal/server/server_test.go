package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/handler"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/metrics"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().String()
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NothingToServe(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(), errNoServersToRun)
}

// stopWorker records that it observed cancellation.
type stopWorker struct {
	stopped chan struct{}
}

func (w *stopWorker) Run(ctx context.Context) {
	<-ctx.Done()
	close(w.stopped)
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddress(t),
		GRPCAddress:     freeAddress(t),
		ShutdownTimeout: time.Second,
	}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, metrics.New(), logger.Nop())
	require.NoError(t, err)

	worker := &stopWorker{stopped: make(chan struct{})}
	srv, err := NewServer(handlers, workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).serve(ctx) }()

	// /metrics needs no services, so it proves the router is mounted
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/metrics", cfg.HTTPAddress))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	<-worker.stopped
}
