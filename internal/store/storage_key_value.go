package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/note-pilot/internal/logger"
)

const (
	kvTable       = "kv"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpsertTail  = "ON CONFLICT (key) DO UPDATE SET value = excluded.value"
)

type sqlKeyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLKeyValueStore returns a [KeyValueStore] over the kv table of db.
// The schema must already be migrated.
func NewSQLKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqlKeyValueStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlKeyValueStore.Get").
			Str("key", key).
			Msg("failed to query value")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn).
		Values(key, value).
		Suffix(kvUpsertTail).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		return s.execError(log, "sqlKeyValueStore.Set", key, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		return s.execError(log, "sqlKeyValueStore.Remove", key, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Close() error {
	return s.DB.DB.Close()
}

func (s *sqlKeyValueStore) execError(log *logger.Logger, fn, key string, err error) error {
	class := NonRetryable
	if s.errorClassificator != nil {
		class = s.errorClassificator.Classify(err)
	}

	log.Err(err).
		Str("func", fn).
		Str("key", key).
		Stringer("classification", class).
		Msg("failed to execute statement")

	if class == QuotaExceeded {
		return fmt.Errorf("%w (key=%s): %w", ErrQuotaExceeded, key, err)
	}
	return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
}
