package service

import (
	"context"
	"os"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/models"
)

// TimestampLayout is RFC 3339 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	googleClientIDPreviewLength = 10
	defaultNextAuthURL          = "http://localhost:3000"
	runtimeName                 = "go"
	configNotSet                = "NOT_SET"
)

// presenceKeys are reported by EnvPresence in this order.
var presenceKeys = []string{
	"NEXTAUTH_URL",
	"NEXTAUTH_SECRET",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"DATABASE_URL",
	"WEBAUTHN_ORIGIN",
	"WEBAUTHN_RP_ID",
	"AUTH_TRUST_HOST",
}

type diagnosticsService struct {
	appInfo    AppInfoService
	repository store.DiagnosticsRepository

	// lookupEnv reads the process environment at call time.
	lookupEnv func(string) (string, bool)
	clock     func() time.Time

	logger *logger.Logger
}

func NewDiagnosticsService(appInfo AppInfoService, repository store.DiagnosticsRepository, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		appInfo:    appInfo,
		repository: repository,
		lookupEnv:  os.LookupEnv,
		clock:      time.Now,
		logger:     logger,
	}
}

func (d *diagnosticsService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    models.StatusHealthy,
		Timestamp: d.timestamp(),
		Service:   d.appInfo.GetServiceName(ctx),
		Version:   d.appInfo.GetAppVersion(ctx),
	}
}

// DebugEnv reports which authentication variables are set without echoing
// any secret value.
func (d *diagnosticsService) DebugEnv(ctx context.Context) models.DebugEnvReport {
	googleClientID := d.env("GOOGLE_CLIENT_ID")

	preview := models.EnvNotSet
	if googleClientID != "" {
		preview = prefix(googleClientID, googleClientIDPreviewLength) + "..."
	}

	return models.DebugEnvReport{
		NodeEnv:               d.env("NODE_ENV"),
		NextAuthURL:           d.env("NEXTAUTH_URL"),
		NextAuthSecret:        d.setOrNot("NEXTAUTH_SECRET", models.EnvSet, models.EnvNotSet),
		GoogleClientID:        setOrNot(googleClientID, models.EnvSet, models.EnvNotSet),
		GoogleClientSecret:    d.setOrNot("GOOGLE_CLIENT_SECRET", models.EnvSet, models.EnvNotSet),
		GoogleClientIDPreview: preview,
	}
}

// ProbeDatabase runs the connectivity query. Failures are reported in the
// result, never retried.
func (d *diagnosticsService) ProbeDatabase(ctx context.Context) models.DBDiagnostics {
	if d.repository == nil {
		return models.DBDiagnostics{OK: false, Error: "database is not configured"}
	}

	result, err := d.repository.SelectOne(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "diagnosticsService.ProbeDatabase").Msg("database probe failed")
		return models.DBDiagnostics{OK: false, Error: err.Error()}
	}

	return models.DBDiagnostics{OK: true, Result: result}
}

func (d *diagnosticsService) EnvPresence(ctx context.Context) models.EnvPresenceReport {
	present := make(map[string]bool, len(presenceKeys))
	for _, key := range presenceKeys {
		present[key] = d.env(key) != ""
	}

	return models.EnvPresenceReport{
		Present: present,
		Runtime: runtimeName,
		NodeEnv: d.env("NODE_ENV"),
	}
}

func (d *diagnosticsService) ConfigReport(ctx context.Context) models.ConfigReport {
	nextAuthURL := d.env("NEXTAUTH_URL")
	googleClientID := d.env("GOOGLE_CLIENT_ID")
	googleClientSecret := d.env("GOOGLE_CLIENT_SECRET")
	nextAuthSecret := d.env("NEXTAUTH_SECRET")

	displayURL := nextAuthURL
	if displayURL == "" {
		displayURL = configNotSet + " (falling back to localhost:3000)"
	}

	report := models.ConfigReport{
		Status:      models.StatusHealthy,
		Timestamp:   d.timestamp(),
		Environment: d.env("NODE_ENV"),
		Version:     d.appInfo.GetAppVersion(ctx),
		Env: map[string]string{
			"NEXTAUTH_URL":         displayURL,
			"NEXTAUTH_SECRET":      setOrNot(nextAuthSecret, models.EnvSet, configNotSet),
			"GOOGLE_CLIENT_ID":     setOrNot(googleClientID, models.EnvSet, configNotSet),
			"GOOGLE_CLIENT_SECRET": setOrNot(googleClientSecret, models.EnvSet, configNotSet),
			"NODE_ENV":             d.env("NODE_ENV"),
		},
		Issues:          []string{},
		Recommendations: []string{},
	}

	if nextAuthURL == "" || nextAuthURL == defaultNextAuthURL {
		report.AddIssue(
			"NEXTAUTH_URL is not set or is using localhost",
			"Set NEXTAUTH_URL to your production domain",
		)
	}
	if googleClientID == "" || googleClientSecret == "" {
		report.AddIssue(
			"Google OAuth credentials are not configured",
			"Set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables",
		)
	}
	if nextAuthSecret == "" {
		report.AddIssue(
			"NEXTAUTH_SECRET is not set",
			"Set NEXTAUTH_SECRET to a secure random string",
		)
	}

	if len(report.Issues) > 0 {
		report.Status = models.StatusNeedsConfiguration
	}

	return report
}

func (d *diagnosticsService) env(key string) string {
	value, _ := d.lookupEnv(key)
	return value
}

func (d *diagnosticsService) setOrNot(key, set, notSet string) string {
	return setOrNot(d.env(key), set, notSet)
}

func (d *diagnosticsService) timestamp() string {
	return d.clock().UTC().Format(TimestampLayout)
}

func setOrNot(value, set, notSet string) string {
	if value != "" {
		return set
	}
	return notSet
}

// prefix returns at most n leading runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
