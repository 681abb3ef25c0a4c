package service

import (
	"context"
	"errors"
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

func newTestWillService(t *testing.T) (*willService, *mock.MockWillRepository) {
	t.Helper()
	repo := mock.NewMockWillRepository(gomock.NewController(t))

	svc := NewWillService(repo, logger.Nop()).(*willService)
	svc.idGenerator = &stubIDGenerator{ids: []string{"will-1"}}
	svc.clock = func() time.Time { return fixedNow }

	return svc, repo
}

func TestWillService_CreateWill_AppliesDefaults(t *testing.T) {
	svc, repo := newTestWillService(t)

	repo.EXPECT().CreateWill(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.CreateWill(context.Background(), "user-1", models.Will{
		ID:               "client-chosen",
		UserID:           "someone-else",
		EncryptedContent: "ciphertext",
	})
	require.NoError(t, err)

	assert.Equal(t, "will-1", got.ID)
	assert.Equal(t, "user-1", got.UserID)
	require.NotNil(t, got.RequiresWebAuthn)
	assert.True(t, *got.RequiresWebAuthn)
	assert.Equal(t, models.AccessLevelPrivate, got.AccessLevel)
	assert.Equal(t, models.WillStatusDraft, got.Status)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestWillService_CreateWill_KeepsExplicitValues(t *testing.T) {
	svc, repo := newTestWillService(t)
	requires := false

	repo.EXPECT().CreateWill(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w models.Will) error {
			assert.False(t, *w.RequiresWebAuthn)
			assert.Equal(t, models.AccessLevelBeneficiaryOnly, w.AccessLevel)
			assert.Equal(t, models.WillStatusActive, w.Status)
			return nil
		},
	)

	_, err := svc.CreateWill(context.Background(), "user-1", models.Will{
		EncryptedContent: "ciphertext",
		RequiresWebAuthn: &requires,
		AccessLevel:      models.AccessLevelBeneficiaryOnly,
		Status:           models.WillStatusActive,
	})
	require.NoError(t, err)
}

func TestWillService_CreateWill_MissingContent(t *testing.T) {
	svc, _ := newTestWillService(t)

	_, err := svc.CreateWill(context.Background(), "user-1", models.Will{EncryptedTitle: "t"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestWillService_CreateWill_RejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestWillService(t)

	_, err := svc.CreateWill(context.Background(), "user-1", models.Will{EncryptedContent: "c", AccessLevel: "EVERYONE"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidAccessLevel)

	_, err = svc.CreateWill(context.Background(), "user-1", models.Will{EncryptedContent: "c", Status: "ARCHIVED"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidStatus)
}

func TestWillService_GetWill(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newTestWillService(t)
		repo.EXPECT().GetWill(gomock.Any(), "will-1", "user-1").Return(models.Will{ID: "will-1"}, nil)

		got, err := svc.GetWill(context.Background(), "will-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "will-1", got.ID)
	})

	t.Run("other owner is not found", func(t *testing.T) {
		svc, repo := newTestWillService(t)
		repo.EXPECT().GetWill(gomock.Any(), "will-1", "intruder").Return(models.Will{}, store.ErrWillNotFound)

		_, err := svc.GetWill(context.Background(), "will-1", "intruder")
		assert.ErrorIs(t, err, ErrWillNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo := newTestWillService(t)
		dbErr := errors.New("boom")
		repo.EXPECT().GetWill(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Will{}, dbErr)

		_, err := svc.GetWill(context.Background(), "will-1", "user-1")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrWillNotFound)
	})
}

func TestWillService_ListWills(t *testing.T) {
	t.Run("default limit and empty list", func(t *testing.T) {
		svc, repo := newTestWillService(t)
		repo.EXPECT().ListWills(gomock.Any(), "user-1", models.Pagination{Limit: 20}).Return(nil, nil)

		got, err := svc.ListWills(context.Background(), "user-1", models.Pagination{})
		require.NoError(t, err)
		assert.NotNil(t, got.Wills)
		assert.Empty(t, got.Wills)
		assert.Equal(t, uint64(20), got.Limit)
	})

	t.Run("limit above maximum", func(t *testing.T) {
		svc, _ := newTestWillService(t)

		_, err := svc.ListWills(context.Background(), "user-1", models.Pagination{Limit: 101})
		assert.ErrorIs(t, err, ErrInvalidPagination)
	})

	t.Run("page is passed through", func(t *testing.T) {
		svc, repo := newTestWillService(t)
		page := models.Pagination{Limit: 5, Offset: 10}
		repo.EXPECT().ListWills(gomock.Any(), "user-1", page).Return([]models.Will{{ID: "a"}, {ID: "b"}}, nil)

		got, err := svc.ListWills(context.Background(), "user-1", page)
		require.NoError(t, err)
		assert.Len(t, got.Wills, 2)
		assert.Equal(t, uint64(10), got.Offset)
	})
}

func TestWillService_DeleteWill(t *testing.T) {
	svc, repo := newTestWillService(t)

	repo.EXPECT().DeleteWill(gomock.Any(), "will-1", "user-1").Return(nil)
	require.NoError(t, svc.DeleteWill(context.Background(), "will-1", "user-1"))

	repo.EXPECT().DeleteWill(gomock.Any(), "will-2", "user-1").Return(store.ErrWillNotFound)
	assert.ErrorIs(t, svc.DeleteWill(context.Background(), "will-2", "user-1"), ErrWillNotFound)
}
