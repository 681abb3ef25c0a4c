package config

import (
	"time"
)

// Default values applied to fields left empty by every source.
const (
	DefaultServiceName     = "last-words-web"
	DefaultEnvironment     = "development"
	DefaultTokenIssuer     = "last-words-api"
	DefaultTokenDuration   = time.Hour
	DefaultHTTPAddress     = ":3001"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
	DefaultRPID            = "localhost"
	DefaultRPName          = "Last Words"
	DefaultOrigin          = "http://localhost:3000"
	DefaultSessionTTL      = 5 * time.Minute
	DefaultSweepInterval   = time.Minute
	DefaultDBProbeInterval = 15 * time.Second
)

// applyDefaults fills empty fields, first from the legacy variables of the
// web deployment and then from the package defaults.
func (cfg *StructuredConfig) applyDefaults() {
	setString(&cfg.App.Name, DefaultServiceName)
	setString(&cfg.App.Version, cfg.Legacy.NpmPackageVersion)
	setString(&cfg.App.Environment, cfg.Legacy.NodeEnv)
	setString(&cfg.App.Environment, DefaultEnvironment)

	setString(&cfg.Auth.TokenSignKey, cfg.Legacy.NextAuthSecret)
	setString(&cfg.Auth.TokenSignKey, cfg.Legacy.JWTSecret)
	setString(&cfg.Auth.TokenIssuer, DefaultTokenIssuer)
	setDuration(&cfg.Auth.TokenDuration, DefaultTokenDuration)

	setString(&cfg.WebAuthn.RPID, DefaultRPID)
	setString(&cfg.WebAuthn.RPName, DefaultRPName)
	if len(cfg.WebAuthn.Origins) == 0 {
		cfg.WebAuthn.Origins = []string{DefaultOrigin}
	}
	setDuration(&cfg.WebAuthn.SessionTTL, DefaultSessionTTL)

	setString(&cfg.Storage.DB.DSN, cfg.Legacy.DatabaseURL)

	setString(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDuration(&cfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDuration(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	setDuration(&cfg.Workers.SessionSweepInterval, DefaultSweepInterval)
	setDuration(&cfg.Workers.DBProbeInterval, DefaultDBProbeInterval)
}

func setString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, value time.Duration) {
	if *dst == 0 {
		*dst = value
	}
}
