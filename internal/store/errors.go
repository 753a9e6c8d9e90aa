package store

import "errors"

// Sentinel errors returned by key-value stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQuotaExceeded is returned when the backend refuses a write because
	// it is out of space or the value is larger than it accepts.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrUnsupportedDSN is returned when no backend can be derived from the
	// configured DSN.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level operation errors. These are returned (or wrapped) by store
// methods when a SQL or file operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrReadingFile is returned when the backing file of a file store
	// cannot be read or decoded.
	ErrReadingFile = errors.New("failed to read storage file")

	// ErrWritingFile is returned when the backing file of a file store
	// cannot be written.
	ErrWritingFile = errors.New("failed to write storage file")
)
