package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(withSecurityHeaders, withGZip)
	// after withGZip, so the limit applies to the decompressed body
	if h.cfg.MaxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.cfg.MaxBodyBytes))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/diag/db", h.diagDB)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics.Handler())
		}
	})

	// debug routes leak deployment details and can be switched off
	if !h.cfg.DisableDebugRoutes {
		router.Group(func(r chi.Router) {
			r.Get("/api/debug-env", h.debugEnv)
			r.Get("/api/diag/env", h.diagEnv)
			r.Get("/api/diag/config", h.diagConfig)
		})
	}

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authenticated)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/webauthn/registration/options", h.webAuthnRegistrationOptions)
		r.Post("/api/webauthn/registration/verify", h.webAuthnRegistrationVerify)
		r.Post("/api/webauthn/authentication/options", h.webAuthnAuthenticationOptions)
		r.Post("/api/webauthn/authentication/verify", h.webAuthnAuthenticationVerify)

		r.Post("/api/crypto/generate-cik", h.generateCIK)

		r.Post("/api/wills", h.createWill)
		r.Get("/api/wills", h.listWills)
		r.Get("/api/wills/{id}", h.getWill)
		r.Delete("/api/wills/{id}", h.deleteWill)

		// secrets additionally require a WebAuthn verified token
		r.Group(func(r chi.Router) {
			r.Use(h.requiresWebAuthn)

			r.Post("/api/wills/{id}/secrets", h.createSecret)
			r.Get("/api/wills/{id}/secrets", h.listSecrets)
			r.Get("/api/secrets/{id}", h.getSecret)
			r.Delete("/api/secrets/{id}", h.deleteSecret)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
