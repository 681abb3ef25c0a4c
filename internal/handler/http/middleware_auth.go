package http

import (
	"net/http"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
	"github.com/rs/zerolog"
)

// authenticated is the guard of every non-public route.
//
// It reads the bearer token from the "Authorization" header, validates it via
// AuthService.ParseToken and stores the resulting models.AuthenticatedUser in
// the request context, where handlers read it with utils.CurrentUser.
//
// Rejections are HTTP 401 with one of two messages:
//   - "Access token is required" when the header or token is missing.
//   - "Invalid access token" when the token is malformed, expired, signed
//     with another key or issued by someone else.
func (h *Handler) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("request without access token")
			utils.WriteError(w, msgAccessTokenRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("invalid access token")
			utils.WriteError(w, msgInvalidAccessToken, http.StatusUnauthorized)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.User.ID)
		})

		ctx = log.WithContext(utils.WithCurrentUser(ctx, token.User))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requiresWebAuthn must be mounted after authenticated. It lets the request
// through only when the token was issued after a WebAuthn assertion.
func (h *Handler) requiresWebAuthn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.CurrentUser(r.Context())
		if !ok || !user.WebAuthnVerified {
			logger.FromRequest(r).Warn().Msg("webauthn verification required")
			utils.WriteError(w, msgWebAuthnVerificationRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// currentUser returns the caller or writes a 500 when the route was mounted
// outside the authenticated group.
func currentUser(w http.ResponseWriter, r *http.Request) (models.AuthenticatedUser, bool) {
	user, ok := utils.CurrentUser(r.Context())
	if !ok {
		writeError(w, r, ErrNoCurrentUser)
	}
	return user, ok
}
