package http

import (
	"fmt"
	"net/http"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

func (h *Handler) webAuthnRegistrationOptions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	options, err := h.services.WebAuthnService.BeginRegistration(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

func (h *Handler) webAuthnRegistrationVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CeremonyFinishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.WebAuthnService.FinishRegistration(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("credential_id", result.CredentialID).Msg("passkey registered")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) webAuthnAuthenticationOptions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	options, err := h.services.WebAuthnService.BeginLogin(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

func (h *Handler) webAuthnAuthenticationVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CeremonyFinishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.WebAuthnService.FinishLogin(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token))
	utils.WriteJSON(w, result, http.StatusOK)
}
