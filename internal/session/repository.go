package session

import (
	"sync"

	"github.com/kuberbiotech/kuber-web/internal/kv"
)

// Repository stores values per session id.
type Repository interface {
	Get(sid, key string) (string, error)
	Set(sid, key, value string) error
	Delete(sid string, keys ...string) error
}

// InMemoryRepository keeps sessions in process memory.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: map[string]map[string]string{}}
}

func (r *InMemoryRepository) Get(sid, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.sessions[sid][key]
	if !ok {
		return "", kv.ErrNotFound
	}
	return v, nil
}

func (r *InMemoryRepository) Set(sid, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, ok := r.sessions[sid]
	if !ok {
		values = map[string]string{}
		r.sessions[sid] = values
	}
	values[key] = value
	return nil
}

func (r *InMemoryRepository) Delete(sid string, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	values, ok := r.sessions[sid]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(values, k)
	}
	if len(values) == 0 {
		delete(r.sessions, sid)
	}
	return nil
}
