package service

import (
	"testing"

	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		offset  string
		want    models.Pagination
		wantErr bool
	}{
		{name: "defaults", want: models.Pagination{Limit: 20}},
		{name: "explicit", limit: "50", offset: "100", want: models.Pagination{Limit: 50, Offset: 100}},
		{name: "bounds", limit: "1", offset: "0", want: models.Pagination{Limit: 1}},
		{name: "max limit", limit: "100", want: models.Pagination{Limit: 100}},
		{name: "zero limit", limit: "0", wantErr: true},
		{name: "limit too big", limit: "101", wantErr: true},
		{name: "negative offset", offset: "-1", wantErr: true},
		{name: "not a number", limit: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePagination(tt.limit, tt.offset)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPagination)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
