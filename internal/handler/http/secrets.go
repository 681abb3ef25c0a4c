package http

import (
	"net/http"

	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	willID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var secret models.Secret
	if err = decodeJSON(r, &secret); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.SecretService.CreateSecret(r.Context(), user.ID, willID, secret)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	willID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	secrets, err := h.services.SecretService.ListSecrets(r.Context(), user.ID, willID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	secretID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	secret, err := h.services.SecretService.GetSecret(r.Context(), secretID, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, secret, http.StatusOK)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	secretID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.SecretService.DeleteSecret(r.Context(), secretID, user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
