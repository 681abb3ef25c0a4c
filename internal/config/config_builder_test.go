package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{EmailHMACKey: "hmac"},
		Auth:    Auth{TokenSignKey: "sign"},
		Storage: Storage{DB: DB{DSN: "file:test.db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no secrets are available.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one while zero fields leave it untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.App.Version = "1.0.0"
	first.Auth.TokenIssuer = "first"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Auth: Auth{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.Auth.TokenIssuer)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultServiceName, cfg.App.Name)
	assert.Equal(t, DefaultEnvironment, cfg.App.Environment)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultRPID, cfg.WebAuthn.RPID)
	assert.Equal(t, DefaultRPName, cfg.WebAuthn.RPName)
	assert.Equal(t, []string{DefaultOrigin}, cfg.WebAuthn.Origins)
	assert.Equal(t, DefaultSessionTTL, cfg.WebAuthn.SessionTTL)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultSweepInterval, cfg.Workers.SessionSweepInterval)
	assert.Equal(t, DefaultDBProbeInterval, cfg.Workers.DBProbeInterval)
}

func TestBuild_LegacyFallbacks(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{EmailHMACKey: "hmac"},
		Legacy: Legacy{
			DatabaseURL:       "postgres://localhost/lastwords",
			NextAuthSecret:    "nextauth",
			JWTSecret:         "jwt",
			NodeEnv:           "production",
			NpmPackageVersion: "0.3.1",
		},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/lastwords", cfg.Storage.DB.DSN)
	assert.Equal(t, "nextauth", cfg.Auth.TokenSignKey)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "0.3.1", cfg.App.Version)
	assert.True(t, cfg.App.IsProduction())
}

func TestBuild_JWTSecretFallback(t *testing.T) {
	b := newConfigBuilder()
	cfg := validConfig()
	cfg.Auth.TokenSignKey = ""
	cfg.Legacy.JWTSecret = "jwt"
	b.configs = append(b.configs, cfg)

	got, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.Auth.TokenSignKey)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsOneConfig(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder().withEnv()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_VERSION":         "3.0.0",
		"AUTH_TOKEN_ISSUER":   "env-issuer",
		"WEBAUTHN_ORIGIN":     "https://a.example,https://b.example",
		"NEXTAUTH_SECRET":     "legacy",
		"npm_package_version": "9.9.9",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "3.0.0", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, b.configs[0].WebAuthn.Origins)
	assert.Equal(t, "legacy", b.configs[0].Legacy.NextAuthSecret)
	assert.Equal(t, "9.9.9", b.configs[0].Legacy.NpmPackageVersion)
}

func TestWithEnv_SetsErrorOnInvalidDuration(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"AUTH_TOKEN_DURATION": "forever"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token-issuer", "flag-issuer"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].Auth.TokenIssuer)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_issuer": "json-issuer", "token_duration": "2h"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, b.configs[1].Auth.TokenDuration)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the flag path wins over the env path.
func TestWithJSON_UsesLastPath(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "env"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "flag"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "flag", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EndToEnd(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":9000"},
	})
	setEnvVars(t, map[string]string{
		"APP_EMAIL_HMAC_KEY": "hmac",
		"DATABASE_URL":       "file:e2e.db",
		"AUTH_TOKEN_ISSUER":  "env-issuer",
	})

	cfg, err := GetStructuredConfig([]string{
		"-token-sign-key", "flag-key",
		"-token-issuer", "flag-issuer",
		"-c", path,
	})
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "file:e2e.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.IsSQLite())
}
