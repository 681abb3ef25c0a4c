package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/migrations"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

func boolPtr(b bool) *bool {
	return &b
}
