package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	want := models.HealthStatus{
		Status:    models.StatusHealthy,
		Timestamp: "2025-03-14T09:26:53.589Z",
		Service:   "last-words-web",
		Version:   "1.0.0",
	}
	m.diagnostics.EXPECT().Health(gomock.Any()).Return(want)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, want, decodeBody[models.HealthStatus](t, rec))
}

func TestDebugEnv(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.diagnostics.EXPECT().DebugEnv(gomock.Any()).Return(models.DebugEnvReport{
		NodeEnv:               "production",
		NextAuthSecret:        models.EnvSet,
		GoogleClientID:        models.EnvNotSet,
		GoogleClientSecret:    models.EnvNotSet,
		GoogleClientIDPreview: models.EnvNotSet,
	})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/debug-env", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "production", body["NODE_ENV"])
	assert.Equal(t, "SET", body["NEXTAUTH_SECRET"])
	assert.Equal(t, "NOT SET", body["GOOGLE_CLIENT_ID_PREVIEW"])
	assert.NotContains(t, body, "NEXTAUTH_URL")
}

func TestDiagDB(t *testing.T) {
	tests := []struct {
		name       string
		report     models.DBDiagnostics
		wantStatus int
	}{
		{
			name:       "probe succeeds",
			report:     models.DBDiagnostics{OK: true, Result: []map[string]any{{"ok": float64(1)}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "probe fails",
			report:     models.DBDiagnostics{OK: false, Error: "connection refused"},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.diagnostics.EXPECT().ProbeDatabase(gomock.Any()).Return(tt.report)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/diag/db", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.report, decodeBody[models.DBDiagnostics](t, rec))
		})
	}
}

func TestDiagEnv(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.diagnostics.EXPECT().EnvPresence(gomock.Any()).Return(models.EnvPresenceReport{
		Present: map[string]bool{"DATABASE_URL": true},
		Runtime: "go",
	})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/diag/env", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.EnvPresenceReport](t, rec)
	assert.True(t, body.Present["DATABASE_URL"])
	assert.Equal(t, "go", body.Runtime)
}

func TestDiagConfig(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	report := models.ConfigReport{Status: models.StatusNeedsConfiguration}
	report.AddIssue("NEXTAUTH_SECRET is not set", "Set NEXTAUTH_SECRET")
	m.diagnostics.EXPECT().ConfigReport(gomock.Any()).Return(report)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/diag/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.ConfigReport](t, rec)
	assert.Equal(t, models.StatusNeedsConfiguration, body.Status)
	assert.Equal(t, []string{"NEXTAUTH_SECRET is not set"}, body.Issues)
}
