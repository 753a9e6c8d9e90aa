package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/note-pilot/internal/logger"
)

func TestFileKeyValueStore_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	kv, err := NewFileKeyValueStore(path, logger.Nop())
	require.NoError(t, err)

	_, ok, err := kv.Get(testContext(), "savedNotes")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(testContext(), "savedNotes", `[{"topic":"Entropy"}]`))
	require.NoError(t, kv.Set(testContext(), "np_dark", "1"))
	require.NoError(t, kv.Remove(testContext(), "np_dark"))
	require.NoError(t, kv.Close())

	reopened, err := NewFileKeyValueStore(path, logger.Nop())
	require.NoError(t, err)

	value, ok, err := reopened.Get(testContext(), "savedNotes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"topic":"Entropy"}]`, value)

	_, ok, err = reopened.Get(testContext(), "np_dark")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKeyValueStore_RemoveAbsentDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	kv, err := NewFileKeyValueStore(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Remove(testContext(), "missing"))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileKeyValueStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	kv, err := NewFileKeyValueStore(path, logger.Nop())
	require.NoError(t, err)

	_, ok, err := kv.Get(testContext(), "savedNotes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKeyValueStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	kv, err := NewFileKeyValueStore(path, logger.Nop())
	assert.Nil(t, kv)
	assert.ErrorIs(t, err, ErrReadingFile)
}

func TestFileKeyValueStore_WriteFailureKeepsPreviousState(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	require.NoError(t, os.Mkdir(dir, 0o700))
	path := filepath.Join(dir, "notes.json")

	kv, err := NewFileKeyValueStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, os.Remove(dir))

	err = kv.Set(testContext(), "savedNotes", "[]")
	assert.ErrorIs(t, err, ErrWritingFile)

	_, ok, err := kv.Get(testContext(), "savedNotes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryKeyValueStore(t *testing.T) {
	kv := NewMemoryKeyValueStore()

	_, ok, err := kv.Get(testContext(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(testContext(), "k", "v1"))
	require.NoError(t, kv.Set(testContext(), "k", "v2"))

	value, ok, err := kv.Get(testContext(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, kv.Remove(testContext(), "k"))
	require.NoError(t, kv.Remove(testContext(), "k"))

	_, ok, err = kv.Get(testContext(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, kv.Close())
}
