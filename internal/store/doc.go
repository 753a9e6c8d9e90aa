// Package store persists small string values under string keys.
//
// The note collection and user preferences of the client are kept in a
// [KeyValueStore]. Several interchangeable backends are provided: a SQLite
// file (default), a PostgreSQL database, a single JSON document, and a
// process-local map. [NewClientStorages] picks one from the configured DSN.
package store
