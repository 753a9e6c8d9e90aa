package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/note-pilot/internal/config"
	"github.com/MKhiriev/note-pilot/internal/logger"
)

// Backend names derived from a DSN by [BackendFor].
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// ClientStorages groups all client-side storage into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// KeyValueStore persists the notes blob and user preferences.
	KeyValueStore KeyValueStore
}

// Close releases the underlying backend.
func (c *ClientStorages) Close() error {
	return c.KeyValueStore.Close()
}

// BackendFor picks the storage backend for dsn:
//   - postgres:// or postgresql:// URLs use PostgreSQL;
//   - ":memory:" or "memory" keep data in process memory;
//   - paths ending in .json use a single JSON document;
//   - anything else is a SQLite database file.
func BackendFor(dsn string) (string, error) {
	switch {
	case dsn == "":
		return "", ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, nil
	case dsn == ":memory:", dsn == "memory":
		return BackendMemory, nil
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return BackendFile, nil
	default:
		return BackendSQLite, nil
	}
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. SQL backends are connected and migrated before
// use.
//
// Returns an error if the DSN is unusable, the connection cannot be
// established, or migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	backend, err := BackendFor(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error selecting storage backend: %w", err)
	}
	logger.Info().Str("backend", backend).Msg("creating new storages...")

	var kv KeyValueStore
	switch backend {
	case BackendMemory:
		kv = NewMemoryKeyValueStore()
	case BackendFile:
		kv, err = NewFileKeyValueStore(cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
	case BackendPostgres, BackendSQLite:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DSN, logger)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DSN, logger)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", backend, err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLKeyValueStore(db, logger)
	}

	return &ClientStorages{KeyValueStore: kv}, nil
}
