package cache

import (
	"context"
	"sync"

	"github.com/shipdesk/backend/internal/domain/picking"
)

// InMemoryKVStore implements picking.KVStore using an in-memory map.
// Suitable for single-instance deployments and testing; progress does not
// survive a restart.
type InMemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewInMemoryKVStore creates a new in-memory KV store
func NewInMemoryKVStore() *InMemoryKVStore {
	return &InMemoryKVStore{entries: make(map[string]string)}
}

// Get reads a value; the second return reports whether the key existed
func (s *InMemoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set writes a value
func (s *InMemoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Delete removes a key; deleting an absent key is not an error
func (s *InMemoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryKVStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryKVStore implements picking.KVStore
var _ picking.KVStore = (*InMemoryKVStore)(nil)
