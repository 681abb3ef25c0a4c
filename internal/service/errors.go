package service

import "errors"

var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrWrongPassword          = errors.New("wrong password")
	ErrEmailAlreadyRegistered = errors.New("email is already registered")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrWebAuthnConfiguration = errors.New("webauthn is not configured")
	ErrNoAuthenticator       = errors.New("no authenticator registered")
	ErrInvalidSession        = errors.New("invalid webauthn session")
	ErrSessionExpired        = errors.New("webauthn session expired")
	ErrInvalidCredential     = errors.New("invalid webauthn credential")

	ErrWillNotFound      = errors.New("will not found")
	ErrSecretNotFound    = errors.New("secret not found")
	ErrInvalidPagination = errors.New("invalid pagination")

	ErrCIKGenerationFailed = errors.New("cik generation failed")
)
