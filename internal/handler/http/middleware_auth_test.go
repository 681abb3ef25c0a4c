package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticated(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		expectParse bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgAccessTokenRequired,
		},
		{
			name:        "not a bearer token",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgAccessTokenRequired,
		},
		{
			name:        "empty bearer token",
			header:      "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgAccessTokenRequired,
		},
		{
			name:        "expired or forged token",
			header:      "Bearer " + testToken,
			parseErr:    service.ErrTokenIsExpiredOrInvalid,
			expectParse: true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: msgInvalidAccessToken,
		},
		{
			name:        "valid token",
			header:      "Bearer " + testToken,
			expectParse: true,
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			if tt.expectParse {
				m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
					Return(models.Token{User: testUser}, tt.parseErr)
			}

			var got models.AuthenticatedUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var ok bool
				got, ok = utils.CurrentUser(r.Context())
				require.True(t, ok)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.authenticated(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}
			assert.Equal(t, testUser, got)
		})
	}
}

func TestRequiresWebAuthn(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		user       *models.AuthenticatedUser
		wantStatus int
	}{
		{name: "verified", user: &testVerifiedUser, wantStatus: http.StatusOK},
		{name: "password only", user: &testUser, wantStatus: http.StatusUnauthorized},
		{name: "no user", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/secrets/s1", nil)
			if tt.user != nil {
				req = req.WithContext(utils.WithCurrentUser(req.Context(), *tt.user))
			}
			rec := httptest.NewRecorder()
			h.requiresWebAuthn(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, msgWebAuthnVerificationRequired, errorMessage(t, rec))
			}
		})
	}
}

func TestCurrentUser_MissingIsInternalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, ok := currentUser(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
