package http

import (
	"errors"
	"net/http"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/internal/utils"
)

// errorStatusMap lists the errors that are safe to show to the caller.
// Each entry is a distinct sentinel so at most one of them matches an error.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrMissingPathParameter: http.StatusBadRequest,
	ErrRequestTooLarge:      http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPagination:       http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmailAlreadyRegistered:  http.StatusConflict,

	service.ErrNoAuthenticator:   http.StatusNotFound,
	service.ErrInvalidSession:    http.StatusBadRequest,
	service.ErrSessionExpired:    http.StatusBadRequest,
	service.ErrInvalidCredential: http.StatusBadRequest,

	service.ErrWillNotFound:   http.StatusNotFound,
	service.ErrSecretNotFound: http.StatusNotFound,
}

// statusFromError returns the HTTP status for err and the sentinel it
// matched. Unknown errors are internal server errors.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes it as {"error": ...}. Internal errors are
// never described to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, target.Error(), status)
}
