package http

import (
	"net/http"
	"strings"
)

var securityHeaders = map[string]string{
	"Content-Security-Policy":           "default-src 'none'; script-src 'none'; object-src 'none'; base-uri 'none'; frame-ancestors 'none'",
	"Strict-Transport-Security":         "max-age=31536000; includeSubDomains; preload",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Referrer-Policy":                   "strict-origin-when-cross-origin",
	"X-Frame-Options":                   "DENY",
	"X-Content-Type-Options":            "nosniff",
	"X-DNS-Prefetch-Control":            "off",
	"X-Permitted-Cross-Domain-Policies": "none",
}

// noStorePrefixes are paths whose responses carry tokens or key material.
var noStorePrefixes = []string{"/api/auth", "/api/crypto", "/api/webauthn"}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		for name, value := range securityHeaders {
			header.Set(name, value)
		}

		for _, prefix := range noStorePrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
				header.Set("Pragma", "no-cache")
				break
			}
		}

		next.ServeHTTP(w, r)
	})
}
