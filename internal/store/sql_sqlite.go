package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/migrations"
)

// NewConnectSQLite opens the SQLite file at path, creating it and its
// parent directories when missing.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(path); err != nil {
		log.Err(err).Str("path", path).Msg("error creating database file")
		return nil, err
	}

	return openDB(ctx, sqlDialect{
		driver:      "sqlite3",
		migrations:  migrations.DialectSQLite,
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
		// one writer avoids SQLITE_BUSY between pooled connections
		maxOpenConns: 1,
	}, path, log)
}

func ensureDBFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
