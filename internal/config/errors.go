package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing e-mail HMAC key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid token settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an unusable listener configuration.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWebAuthnConfigs indicates invalid relying party settings.
	ErrInvalidWebAuthnConfigs = errors.New("invalid webauthn configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
