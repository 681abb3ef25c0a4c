package http

import (
	"net/http"

	"github.com/lastwords/last-words-api/internal/utils"
)

func (h *Handler) generateCIK(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	cik, err := h.services.CryptoService.GenerateCIK(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, cik, http.StatusOK)
}
