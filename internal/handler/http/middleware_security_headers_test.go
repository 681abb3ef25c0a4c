package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSecurityHeaders(t *testing.T) {
	tests := []struct {
		path        string
		wantNoStore bool
	}{
		{path: "/api/health"},
		{path: "/api/wills"},
		{path: "/api/auth/login", wantNoStore: true},
		{path: "/api/crypto/generate-cik", wantNoStore: true},
		{path: "/api/webauthn/registration/options", wantNoStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			rec := httptest.NewRecorder()
			withSecurityHeaders(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			for name, value := range securityHeaders {
				assert.Equal(t, value, rec.Header().Get(name), name)
			}
			if tt.wantNoStore {
				assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
				assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
			} else {
				assert.Empty(t, rec.Header().Get("Cache-Control"))
			}
		})
	}
}
