// Command healthcheck probes GET /api/health of a running API and exits 0
// only when it answers 200 with status "healthy". It is meant for container
// HEALTHCHECK directives and readiness gates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lastwords/last-words-api/internal/adapter"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/models"
)

const (
	defaultURL     = "http://localhost:3001"
	defaultTimeout = 5 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("healthcheck")

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	url := fs.String("url", envOr("HEALTHCHECK_URL", defaultURL), "base URL of the API")
	timeout := fs.Duration("timeout", defaultTimeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client, err := adapter.NewHTTPAPIClient(*url, *timeout, log)
	if err != nil {
		log.Err(err).Msg("invalid url")
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = check(ctx, client); err != nil {
		log.Err(err).Str("url", *url).Msg("unhealthy")
		return 1
	}

	log.Info().Str("url", *url).Msg("healthy")
	return 0
}

func check(ctx context.Context, client adapter.APIClient) error {
	status, err := client.Health(ctx)
	if err != nil {
		return err
	}
	if status.Status != models.StatusHealthy {
		return fmt.Errorf("status is %q", status.Status)
	}
	return nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
