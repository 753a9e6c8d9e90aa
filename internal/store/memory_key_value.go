package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueStore returns a process-local [KeyValueStore]. Its
// content is lost on exit.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{data: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *memoryKeyValueStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memoryKeyValueStore) Close() error {
	return nil
}
