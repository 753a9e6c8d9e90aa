package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDBFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "note-pilot", "notes.db")

		require.NoError(t, ensureDBFile(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("keeps existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.db")
		require.NoError(t, os.WriteFile(path, []byte("SQLite format 3"), 0o600))

		require.NoError(t, ensureDBFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "SQLite format 3", string(data))
	})

	t.Run("parent is a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		assert.Error(t, ensureDBFile(filepath.Join(blocker, "notes.db")))
	})
}
