package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectSchema(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS news_sources").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS news_items").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_news_items_published_at").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_news_items_source_id").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_news_items_source_guid").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestMigrateUp_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	expectSchema(mock)

	require.NoError(t, MigrateUp(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	expectSchema(mock)
	expectSchema(mock)

	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateUp(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr string
	}{
		{
			name: "sources table",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("CREATE TABLE IF NOT EXISTS news_sources").WillReturnError(errors.New("denied"))
			},
			wantErr: "create news_sources",
		},
		{
			name: "items table",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("CREATE TABLE IF NOT EXISTS news_sources").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec("CREATE TABLE IF NOT EXISTS news_items").WillReturnError(errors.New("denied"))
			},
			wantErr: "create news_items",
		},
		{
			name: "index",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec("CREATE TABLE IF NOT EXISTS news_sources").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec("CREATE TABLE IF NOT EXISTS news_items").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectExec("CREATE INDEX").WillReturnError(errors.New("denied"))
			},
			wantErr: "create index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			tt.setup(mock)
			err = MigrateUp(db)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMigrateDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DROP TABLE IF EXISTS news_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DROP TABLE IF EXISTS news_sources").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, MigrateDown(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
