package service

import (
	"context"
	"testing"
	"time"

	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/mock"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/internal/validators"
	"github.com/lastwords/last-words-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSecretService(t *testing.T) (*secretService, *mock.MockSecretRepository, *mock.MockWillRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretRepository(ctrl)
	wills := mock.NewMockWillRepository(ctrl)

	svc := NewSecretService(secrets, wills, logger.Nop()).(*secretService)
	svc.idGenerator = &stubIDGenerator{ids: []string{"secret-1"}}
	svc.clock = func() time.Time { return fixedNow }

	return svc, secrets, wills
}

func TestSecretService_CreateSecret(t *testing.T) {
	svc, secrets, wills := newTestSecretService(t)
	ctx := context.Background()

	gomock.InOrder(
		wills.EXPECT().GetWill(ctx, "will-1", "user-1").Return(models.Will{ID: "will-1"}, nil),
		secrets.EXPECT().CreateSecret(ctx, gomock.Any()).Return(nil),
	)

	got, err := svc.CreateSecret(ctx, "user-1", "will-1", models.Secret{
		WillID:           "will-9",
		EncryptedContent: "ciphertext",
		SecretType:       "password",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret-1", got.ID)
	assert.Equal(t, "will-1", got.WillID)
	assert.Equal(t, DefaultSecretPriority, got.Priority)
	require.NotNil(t, got.RequiresWebAuthn)
	assert.True(t, *got.RequiresWebAuthn)
	assert.Equal(t, models.AccessLevelPrivate, got.AccessLevel)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestSecretService_CreateSecret_ForeignWill(t *testing.T) {
	svc, _, wills := newTestSecretService(t)

	wills.EXPECT().GetWill(gomock.Any(), "will-1", "intruder").Return(models.Will{}, store.ErrWillNotFound)

	_, err := svc.CreateSecret(context.Background(), "intruder", "will-1", models.Secret{EncryptedContent: "c"})
	assert.ErrorIs(t, err, ErrWillNotFound)
}

func TestSecretService_CreateSecret_InvalidData(t *testing.T) {
	svc, _, _ := newTestSecretService(t)

	_, err := svc.CreateSecret(context.Background(), "user-1", "will-1", models.Secret{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateSecret(context.Background(), "user-1", "will-1", models.Secret{EncryptedContent: "c", Priority: -1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPriority)

	_, err = svc.CreateSecret(context.Background(), "user-1", "will-1", models.Secret{EncryptedContent: "c", AccessLevel: "SHARED"})
	assert.ErrorIs(t, err, validators.ErrInvalidAccessLevel)
}

func TestSecretService_ListSecrets(t *testing.T) {
	svc, secrets, wills := newTestSecretService(t)
	page := models.Pagination{Limit: 2}

	wills.EXPECT().GetWill(gomock.Any(), "will-1", "user-1").Return(models.Will{ID: "will-1"}, nil)
	secrets.EXPECT().ListSecrets(gomock.Any(), "will-1", page).
		Return([]models.Secret{{ID: "s1", Priority: 5}, {ID: "s2", Priority: 1}}, nil)

	got, err := svc.ListSecrets(context.Background(), "user-1", "will-1", page)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Length)
	assert.Equal(t, "s1", got.Secrets[0].ID)
}

func TestSecretService_ListSecrets_ForeignWill(t *testing.T) {
	svc, _, wills := newTestSecretService(t)

	wills.EXPECT().GetWill(gomock.Any(), "will-1", "intruder").Return(models.Will{}, store.ErrWillNotFound)

	_, err := svc.ListSecrets(context.Background(), "intruder", "will-1", models.Pagination{})
	assert.ErrorIs(t, err, ErrWillNotFound)
}

func TestSecretService_GetAndDelete(t *testing.T) {
	svc, secrets, _ := newTestSecretService(t)
	ctx := context.Background()

	secrets.EXPECT().GetSecret(ctx, "secret-1", "user-1").Return(models.Secret{ID: "secret-1"}, nil)
	got, err := svc.GetSecret(ctx, "secret-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "secret-1", got.ID)

	secrets.EXPECT().GetSecret(ctx, "secret-1", "intruder").Return(models.Secret{}, store.ErrSecretNotFound)
	_, err = svc.GetSecret(ctx, "secret-1", "intruder")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	secrets.EXPECT().DeleteSecret(ctx, "secret-1", "user-1").Return(nil)
	assert.NoError(t, svc.DeleteSecret(ctx, "secret-1", "user-1"))

	secrets.EXPECT().DeleteSecret(ctx, "secret-1", "intruder").Return(store.ErrSecretNotFound)
	assert.ErrorIs(t, svc.DeleteSecret(ctx, "secret-1", "intruder"), ErrSecretNotFound)
}
