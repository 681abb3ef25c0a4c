package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lastwords/last-words-api/models"
)

// ParsePagination reads the limit and offset query values. Empty values take
// the defaults; limit must be within 1..100 and offset must not be negative.
func ParsePagination(rawLimit, rawOffset string) (models.Pagination, error) {
	page := models.Pagination{Limit: models.DefaultPageLimit}

	if rawLimit = strings.TrimSpace(rawLimit); rawLimit != "" {
		limit, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || limit < 1 || uint64(limit) > models.MaxPageLimit {
			return models.Pagination{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, models.MaxPageLimit)
		}
		page.Limit = uint64(limit)
	}

	if rawOffset = strings.TrimSpace(rawOffset); rawOffset != "" {
		offset, err := strconv.ParseInt(rawOffset, 10, 64)
		if err != nil || offset < 0 {
			return models.Pagination{}, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
		}
		page.Offset = uint64(offset)
	}

	return page, nil
}

func normalizePage(page models.Pagination) (models.Pagination, error) {
	if page.Limit == 0 {
		page.Limit = models.DefaultPageLimit
	}
	if page.Limit > models.MaxPageLimit {
		return models.Pagination{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, models.MaxPageLimit)
	}
	return page, nil
}
