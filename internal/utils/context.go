// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/lastwords/last-words-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the [models.AuthenticatedUser] of the request.
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user.
func WithCurrentUser(ctx context.Context, user models.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUser retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: the request passed the authentication middleware
//   - ok == false: the value is missing (public route) or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.CurrentUser(r.Context())
//	if !ok {
//	    // route is not behind the authentication middleware
//	}
func CurrentUser(ctx context.Context) (models.AuthenticatedUser, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.AuthenticatedUser)
	return user, ok
}
