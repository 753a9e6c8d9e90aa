package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/note-pilot/internal/logger"
	"github.com/MKhiriev/note-pilot/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the SQL
// key-value store needs: goose dialect, squirrel placeholder format and
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps driver-specific errors onto an
// [ErrorClassification] so callers can react without knowing the backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// sqlDialect describes how to reach one SQL backend.
type sqlDialect struct {
	driver       string
	migrations   string
	placeholder  sq.PlaceholderFormat
	classifier   ErrorClassificator
	maxOpenConns int
}

// openDB opens dsn with the dialect's driver and pings it.
func openDB(ctx context.Context, d sqlDialect, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", d.driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(d.maxOpenConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", d.driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}
	log.Debug().Str("driver", d.driver).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            d.migrations,
		placeholder:        d.placeholder,
		errorClassificator: d.classifier,
		logger:             log,
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
