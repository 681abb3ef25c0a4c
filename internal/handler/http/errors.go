// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Messages written by the authentication middleware. They are part of the
// public API and must not change.
const (
	msgAccessTokenRequired          = "Access token is required"
	msgInvalidAccessToken           = "Invalid access token"
	msgWebAuthnVerificationRequired = "WebAuthn verification required"
)

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is reported when a request body, after gzip
	// decompression, exceeds the configured limit.
	ErrRequestTooLarge = errors.New("request body is too large")

	// ErrMissingPathParameter is reported when a route parameter is empty.
	ErrMissingPathParameter = errors.New("missing path parameter")

	// ErrNoCurrentUser means an authenticated handler was mounted without
	// the authentication middleware.
	ErrNoCurrentUser = errors.New("no authenticated user in request context")
)
