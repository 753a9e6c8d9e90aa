package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/migrations"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB, placeholder sq.PlaceholderFormat, classifier ErrorClassificator) *DB {
	return &DB{
		DB:                 db,
		dialect:            migrations.DialectSQLite,
		placeholder:        placeholder,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestSQLKeyValueStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   error
	}{
		{
			name: "present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
					WithArgs("savedNotes").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"topic":"a"}]`))
			},
			wantValue: `[{"topic":"a"}]`,
			wantOK:    true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
					WithArgs("savedNotes").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv")).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, NewSQLiteErrorClassifier()), logger.Nop())

			value, ok, err := kv.Get(testContext(), "savedNotes")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLKeyValueStore_Get_PostgresPlaceholders(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = $1")).
		WithArgs("np_dark").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("1"))

	kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Dollar, NewPostgresErrorClassifier()), logger.Nop())

	value, ok, err := kv.Get(testContext(), "np_dark")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Set ───────────────────────────────────────────────────────────────────────

func TestSQLKeyValueStore_Set(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value) VALUES (?,?) ON CONFLICT (key) DO UPDATE SET value = excluded.value")).
		WithArgs("savedNotes", "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, NewSQLiteErrorClassifier()), logger.Nop())

	require.NoError(t, kv.Set(testContext(), "savedNotes", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyValueStore_Set_Errors(t *testing.T) {
	tests := []struct {
		name       string
		classifier ErrorClassificator
		dbErr      error
		wantErr    error
		notErr     error
	}{
		{
			name:       "sqlite full",
			classifier: NewSQLiteErrorClassifier(),
			dbErr:      sqlite3.Error{Code: sqlite3.ErrFull},
			wantErr:    ErrQuotaExceeded,
		},
		{
			name:       "postgres disk full",
			classifier: NewPostgresErrorClassifier(),
			dbErr:      &pgconn.PgError{Code: pgerrcode.DiskFull},
			wantErr:    ErrQuotaExceeded,
		},
		{
			name:       "generic failure",
			classifier: NewSQLiteErrorClassifier(),
			dbErr:      errors.New("boom"),
			wantErr:    ErrExecutingStatement,
			notErr:     ErrQuotaExceeded,
		},
		{
			name:    "no classifier",
			dbErr:   errors.New("boom"),
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv")).WillReturnError(tt.dbErr)

			kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, tt.classifier), logger.Nop())

			err := kv.Set(testContext(), "savedNotes", "[]")
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.notErr != nil {
				assert.NotErrorIs(t, err, tt.notErr)
			}
		})
	}
}

// ── Remove / Close ────────────────────────────────────────────────────────────

func TestSQLKeyValueStore_Remove(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs("np_dark").
		WillReturnResult(sqlmock.NewResult(0, 0))

	kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, NewSQLiteErrorClassifier()), logger.Nop())

	require.NoError(t, kv.Remove(testContext(), "np_dark"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyValueStore_Remove_Error(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv")).WillReturnError(errors.New("locked"))

	kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, NewSQLiteErrorClassifier()), logger.Nop())

	assert.ErrorIs(t, kv.Remove(testContext(), "np_dark"), ErrExecutingStatement)
}

func TestSQLKeyValueStore_Close(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectClose()

	kv := NewSQLKeyValueStore(newDBFromSQL(db, sq.Question, nil), logger.Nop())

	require.NoError(t, kv.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
