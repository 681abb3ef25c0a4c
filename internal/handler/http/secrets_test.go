package http

import (
	"net/http"
	"testing"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/service"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSecret(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testVerifiedUser)
	m.secrets.EXPECT().
		CreateSecret(gomock.Any(), "user-1", "will-1", models.Secret{EncryptedContent: "c", SecretType: "password"}).
		Return(models.Secret{ID: "secret-1", WillID: "will-1", EncryptedContent: "c", Priority: 1}, nil)

	body := map[string]string{"encryptedContent": "c", "secretType": "password"}
	rec := serve(h, withBearer(newJSONRequest(t, http.MethodPost, "/api/wills/will-1/secrets", body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody[models.Secret](t, rec)
	assert.Equal(t, "secret-1", got.ID)
	assert.Equal(t, 1, got.Priority)
}

func TestCreateSecret_ForeignWill(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testVerifiedUser)
	m.secrets.EXPECT().CreateSecret(gomock.Any(), "user-1", "will-9", gomock.Any()).Return(models.Secret{}, service.ErrWillNotFound)

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodPost, "/api/wills/will-9/secrets", map[string]string{"encryptedContent": "c"})))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSecrets(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testVerifiedUser)
	m.secrets.EXPECT().
		ListSecrets(gomock.Any(), "user-1", "will-1", models.Pagination{Limit: 2}).
		Return(models.ListSecretsResponse{Secrets: []models.Secret{{ID: "s1"}, {ID: "s2"}}, Length: 2}, nil)

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodGet, "/api/wills/will-1/secrets?limit=2", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeBody[models.ListSecretsResponse](t, rec).Length)
}

func TestGetSecret(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "owned", wantStatus: http.StatusOK},
		{name: "not found", err: service.ErrSecretNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, config.Server{})
			m.expectToken(testVerifiedUser)
			m.secrets.EXPECT().GetSecret(gomock.Any(), "secret-1", "user-1").Return(models.Secret{ID: "secret-1"}, tt.err)

			rec := serve(h, withBearer(newJSONRequest(t, http.MethodGet, "/api/secrets/secret-1", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteSecret(t *testing.T) {
	h, m := newMockedHandler(t, config.Server{})
	m.expectToken(testVerifiedUser)
	m.secrets.EXPECT().DeleteSecret(gomock.Any(), "secret-1", "user-1").Return(service.ErrSecretNotFound)

	rec := serve(h, withBearer(newJSONRequest(t, http.MethodDelete, "/api/secrets/secret-1", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrSecretNotFound.Error(), errorMessage(t, rec))
}
