package keychain

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-memory implementation of Store for testing.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates a new in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (s *MemoryStore) Set(service, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[service] = value
	return nil
}

func (s *MemoryStore) Get(service string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.entries[service]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	return val, nil
}

func (s *MemoryStore) Delete(service string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, service)
	return nil
}
