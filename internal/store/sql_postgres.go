package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/migrations"
)

// NewConnectPostgres opens a pgx-backed pool for a postgres:// dsn.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	return openDB(ctx, sqlDialect{
		driver:       "pgx",
		migrations:   migrations.DialectPostgres,
		placeholder:  sq.Dollar,
		classifier:   NewPostgresErrorClassifier(),
		maxOpenConns: 4,
	}, dsn, log)
}
