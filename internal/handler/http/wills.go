package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

func (h *Handler) createWill(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var will models.Will
	if err := decodeJSON(r, &will); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.WillService.CreateWill(r.Context(), user.ID, will)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listWills(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	wills, err := h.services.WillService.ListWills(r.Context(), user.ID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, wills, http.StatusOK)
}

func (h *Handler) getWill(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	willID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	will, err := h.services.WillService.GetWill(r.Context(), willID, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, will, http.StatusOK)
}

func (h *Handler) deleteWill(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	willID, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WillService.DeleteWill(r.Context(), willID, user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingPathParameter, name)
	}
	return value, nil
}

func pageFromQuery(r *http.Request) (models.Pagination, error) {
	query := r.URL.Query()
	return service.ParsePagination(query.Get("limit"), query.Get("offset"))
}
