package http

import (
	"net/http"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DiagnosticsService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) debugEnv(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DiagnosticsService.DebugEnv(r.Context()), http.StatusOK)
}

// diagDB probes the database. The body is the same on failure, only the
// status changes.
func (h *Handler) diagDB(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.ProbeDatabase(r.Context())
	if !report.OK {
		logger.FromRequest(r).Error().Str("error", report.Error).Msg("database probe failed")
		utils.WriteJSON(w, report, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) diagEnv(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DiagnosticsService.EnvPresence(r.Context()), http.StatusOK)
}

func (h *Handler) diagConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DiagnosticsService.ConfigReport(r.Context()), http.StatusOK)
}
