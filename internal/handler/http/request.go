package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lastwords/last-words-api/internal/utils"
)

// decodeJSON decodes the request body into v. A body cut off by the size
// limit is reported as ErrRequestTooLarge, anything else as ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	err := utils.DecodeJSON(r, v)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
