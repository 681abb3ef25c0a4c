package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOne_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDiagnosticsRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT 1 AS ok`).
		WillReturnRows(sqlmock.NewRows([]string{"ok"}).AddRow(int64(1)))

	result, err := repo.SelectOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"ok": int64(1)}}, result)
}

func TestSelectOne_BytesBecomeStrings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDiagnosticsRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT 1 AS ok`).
		WillReturnRows(sqlmock.NewRows([]string{"ok"}).AddRow([]byte("1")))

	result, err := repo.SelectOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", result[0]["ok"])
}

func TestSelectOne_ErrorVerbatim(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDiagnosticsRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT 1 AS ok`).WillReturnError(errors.New("connection refused"))

	_, err := repo.SelectOne(context.Background())
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}
