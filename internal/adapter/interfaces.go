// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the Last Words REST API.
//
// The client is used by cmd/healthcheck as a readiness probe and by
// integration tooling. Non-2xx responses are mapped to the sentinel errors
// in errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/lastwords/last-words-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIClient talks to a running Last Words API.
type APIClient interface {
	// Health fetches GET /api/health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Register creates an account and stores the returned token for
	// subsequent authenticated calls.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me returns the identity encoded in the stored token.
	Me(ctx context.Context) (models.AuthenticatedUser, error)

	// SetToken replaces the bearer token used by authenticated calls.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string
}
