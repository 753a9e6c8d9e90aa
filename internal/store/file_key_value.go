package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/MKhiriev/note-pilot/internal/logger"
)

// fileKeyValueStore keeps every key in one JSON object on disk. Each write
// replaces the whole file through a temporary file and a rename.
type fileKeyValueStore struct {
	mu     sync.Mutex
	path   string
	data   map[string]string
	logger *logger.Logger
}

// NewFileKeyValueStore opens (or lazily creates) the JSON document at path.
func NewFileKeyValueStore(path string, logger *logger.Logger) (KeyValueStore, error) {
	s := &fileKeyValueStore{
		path:   path,
		data:   make(map[string]string),
		logger: logger,
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err = json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return s, nil
}

func (s *fileKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data[key]
	s.data[key] = value
	if err := s.flush(ctx); err != nil {
		if existed {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}

	return nil
}

func (s *fileKeyValueStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data[key]
	if !existed {
		return nil
	}
	delete(s.data, key)
	if err := s.flush(ctx); err != nil {
		s.data[key] = prev
		return err
	}

	return nil
}

func (s *fileKeyValueStore) Close() error {
	return nil
}

func (s *fileKeyValueStore) flush(ctx context.Context) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		log.Err(err).Str("func", "fileKeyValueStore.flush").Msg("failed to create temp file")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return s.writeError(log, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return s.writeError(log, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return s.writeError(log, err)
	}

	return nil
}

func (s *fileKeyValueStore) writeError(log *logger.Logger, err error) error {
	log.Err(err).Str("func", "fileKeyValueStore.flush").Str("path", s.path).Msg("failed to write storage file")
	if isNoSpace(err) {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrWritingFile, err)
}

func isNoSpace(err error) bool {
	return errors.Is(err, syscall.ENOSPC)
}
