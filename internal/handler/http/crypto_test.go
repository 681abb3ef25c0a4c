package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerateCIK(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testUser)
	want := models.CIKResponse{CIK: "AAAA", Timestamp: "2025-03-14T09:26:53.589Z"}
	m.crypto.EXPECT().GenerateCIK(gomock.Any()).Return(want, nil)

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodPost, "/api/crypto/generate-cik", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decodeBody[models.CIKResponse](t, rec))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-store")
}

func TestGenerateCIK_Failure(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testUser)
	m.crypto.EXPECT().GenerateCIK(gomock.Any()).
		Return(models.CIKResponse{}, errors.Join(service.ErrCIKGenerationFailed, errors.New("entropy")))

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodPost, "/api/crypto/generate-cik", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorMessage(t, rec))
}
