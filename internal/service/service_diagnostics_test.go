package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/mock"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestDiagnosticsService(t *testing.T, env map[string]string) (*diagnosticsService, *mock.MockDiagnosticsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDiagnosticsRepository(ctrl)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("2.0.1").AnyTimes()
	appInfo.EXPECT().GetServiceName(gomock.Any()).Return("last-words-web").AnyTimes()

	svc := NewDiagnosticsService(appInfo, repo, logger.Nop()).(*diagnosticsService)
	svc.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	svc.clock = func() time.Time { return fixedNow }

	return svc, repo
}

func TestDiagnosticsService_Health(t *testing.T) {
	svc, _ := newTestDiagnosticsService(t, nil)

	got := svc.Health(context.Background())

	assert.Equal(t, models.HealthStatus{
		Status:    "healthy",
		Timestamp: "2025-03-14T09:26:53.589Z",
		Service:   "last-words-web",
		Version:   "2.0.1",
	}, got)
}

func TestDiagnosticsService_DebugEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want models.DebugEnvReport
	}{
		{
			name: "nothing set",
			env:  map[string]string{},
			want: models.DebugEnvReport{
				NextAuthSecret:        "NOT SET",
				GoogleClientID:        "NOT SET",
				GoogleClientSecret:    "NOT SET",
				GoogleClientIDPreview: "NOT SET",
			},
		},
		{
			name: "everything set",
			env: map[string]string{
				"NODE_ENV":             "production",
				"NEXTAUTH_URL":         "https://lastwords.example",
				"NEXTAUTH_SECRET":      "s3cr3t",
				"GOOGLE_CLIENT_ID":     "1234567890abcdef.apps.googleusercontent.com",
				"GOOGLE_CLIENT_SECRET": "shh",
			},
			want: models.DebugEnvReport{
				NodeEnv:               "production",
				NextAuthURL:           "https://lastwords.example",
				NextAuthSecret:        "SET",
				GoogleClientID:        "SET",
				GoogleClientSecret:    "SET",
				GoogleClientIDPreview: "1234567890...",
			},
		},
		{
			name: "empty string counts as not set",
			env:  map[string]string{"NEXTAUTH_SECRET": "", "GOOGLE_CLIENT_ID": ""},
			want: models.DebugEnvReport{
				NextAuthSecret:        "NOT SET",
				GoogleClientID:        "NOT SET",
				GoogleClientSecret:    "NOT SET",
				GoogleClientIDPreview: "NOT SET",
			},
		},
		{
			name: "short client id",
			env:  map[string]string{"GOOGLE_CLIENT_ID": "abc"},
			want: models.DebugEnvReport{
				NextAuthSecret:        "NOT SET",
				GoogleClientID:        "SET",
				GoogleClientSecret:    "NOT SET",
				GoogleClientIDPreview: "abc...",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestDiagnosticsService(t, tt.env)
			assert.Equal(t, tt.want, svc.DebugEnv(context.Background()))
		})
	}
}

func TestDiagnosticsService_DebugEnv_ReadsEnvironmentPerCall(t *testing.T) {
	env := map[string]string{}
	svc, _ := newTestDiagnosticsService(t, env)

	assert.Equal(t, "NOT SET", svc.DebugEnv(context.Background()).NextAuthSecret)

	env["NEXTAUTH_SECRET"] = "now-set"
	assert.Equal(t, "SET", svc.DebugEnv(context.Background()).NextAuthSecret)
}

func TestDiagnosticsService_ProbeDatabase(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, repo := newTestDiagnosticsService(t, nil)
		rows := []map[string]any{{"ok": int64(1)}}
		repo.EXPECT().SelectOne(gomock.Any()).Return(rows, nil)

		got := svc.ProbeDatabase(context.Background())
		assert.True(t, got.OK)
		assert.Equal(t, rows, got.Result)
		assert.Empty(t, got.Error)
	})

	t.Run("error message is reported verbatim", func(t *testing.T) {
		svc, repo := newTestDiagnosticsService(t, nil)
		repo.EXPECT().SelectOne(gomock.Any()).Return(nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

		got := svc.ProbeDatabase(context.Background())
		assert.False(t, got.OK)
		assert.Equal(t, "dial tcp 127.0.0.1:5432: connect: connection refused", got.Error)
		assert.Nil(t, got.Result)
	})

	t.Run("cancelled context", func(t *testing.T) {
		svc, repo := newTestDiagnosticsService(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repo.EXPECT().SelectOne(ctx).Return(nil, context.Canceled)

		got := svc.ProbeDatabase(ctx)
		assert.False(t, got.OK)
		assert.Equal(t, context.Canceled.Error(), got.Error)
	})
}

func TestDiagnosticsService_EnvPresence(t *testing.T) {
	svc, _ := newTestDiagnosticsService(t, map[string]string{
		"DATABASE_URL":   "postgres://x",
		"WEBAUTHN_RP_ID": "",
		"NODE_ENV":       "test",
	})

	got := svc.EnvPresence(context.Background())

	assert.Len(t, got.Present, len(presenceKeys))
	assert.True(t, got.Present["DATABASE_URL"])
	assert.False(t, got.Present["WEBAUTHN_RP_ID"])
	assert.False(t, got.Present["AUTH_TRUST_HOST"])
	assert.Equal(t, "go", got.Runtime)
	assert.Equal(t, "test", got.NodeEnv)
}

func TestDiagnosticsService_ConfigReport(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		svc, _ := newTestDiagnosticsService(t, map[string]string{})

		got := svc.ConfigReport(context.Background())

		assert.Equal(t, "needs_configuration", got.Status)
		assert.Len(t, got.Issues, 3)
		assert.Len(t, got.Recommendations, 3)
		assert.Equal(t, "NOT_SET (falling back to localhost:3000)", got.Env["NEXTAUTH_URL"])
		assert.Equal(t, "NOT_SET", got.Env["NEXTAUTH_SECRET"])
		assert.Equal(t, "2.0.1", got.Version)
	})

	t.Run("localhost url is an issue", func(t *testing.T) {
		svc, _ := newTestDiagnosticsService(t, map[string]string{
			"NEXTAUTH_URL":         "http://localhost:3000",
			"NEXTAUTH_SECRET":      "x",
			"GOOGLE_CLIENT_ID":     "id",
			"GOOGLE_CLIENT_SECRET": "secret",
		})

		got := svc.ConfigReport(context.Background())

		assert.Equal(t, "needs_configuration", got.Status)
		assert.Equal(t, []string{"NEXTAUTH_URL is not set or is using localhost"}, got.Issues)
	})

	t.Run("fully configured", func(t *testing.T) {
		svc, _ := newTestDiagnosticsService(t, map[string]string{
			"NEXTAUTH_URL":         "https://lastwords.example",
			"NEXTAUTH_SECRET":      "x",
			"GOOGLE_CLIENT_ID":     "id",
			"GOOGLE_CLIENT_SECRET": "secret",
			"NODE_ENV":             "production",
		})

		got := svc.ConfigReport(context.Background())

		assert.Equal(t, "healthy", got.Status)
		assert.Empty(t, got.Issues)
		assert.NotNil(t, got.Issues)
		assert.Equal(t, "production", got.Environment)
		assert.Equal(t, "SET", got.Env["GOOGLE_CLIENT_SECRET"])
	})
}
