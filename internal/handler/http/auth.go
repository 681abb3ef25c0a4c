package http

import (
	"fmt"
	"net/http"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", resp.User.ID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusOK)
}

// me echoes the identity taken from the verified token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
