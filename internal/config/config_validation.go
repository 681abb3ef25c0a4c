// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It runs after applyDefaults, so only values without a default are
// checked for presence.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}

	if cfg.App.EmailHMACKey == "" {
		return fmt.Errorf("%w: e-mail HMAC key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	for _, origin := range cfg.WebAuthn.Origins {
		u, err := url.Parse(strings.TrimSpace(origin))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid origin %q", ErrInvalidWebAuthnConfigs, origin)
		}
	}
	if cfg.WebAuthn.SessionTTL <= 0 {
		return fmt.Errorf("%w: session TTL must be positive", ErrInvalidWebAuthnConfigs)
	}

	if cfg.Workers.SessionSweepInterval <= 0 || cfg.Workers.DBProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// IsSQLite reports whether the configured DSN points to a SQLite file.
func (db DB) IsSQLite() bool {
	return strings.HasPrefix(db.DSN, "file:") || strings.HasSuffix(db.DSN, ".db")
}

// IsProduction reports whether the service runs in production.
func (a App) IsProduction() bool {
	return a.Environment == "production"
}
