// Package kv defines the key-value persistence used for per-browser state such
// as the language preference and the admin bearer credential.
package kv

import (
	"sync"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("key not found")

// Reader reads a single value. Missing keys yield ErrNotFound.
type Reader interface {
	Get(key string) (string, error)
}

// Store is a Reader that can also persist and remove values.
type Store interface {
	Reader
	Set(key, value string) error
	Delete(key string) error
}

// MemoryStore is an in-memory Store, useful for tests and single-process setups.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore(seed map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string, len(seed))}
	for k, v := range seed {
		s.values[k] = v
	}
	return s
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
