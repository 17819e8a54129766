package sessions

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore keeps sessions in process memory. Used when no redis is
// configured, and by tests.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]map[string]string)}
}

func (ms *memoryStore) Get(ctx context.Context, token, key string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	values, ok := ms.sessions[token]
	if !ok {
		return "", nil
	}
	return values[key], nil
}

func (ms *memoryStore) Set(ctx context.Context, token, key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	values, ok := ms.sessions[token]
	if !ok {
		values = make(map[string]string)
		ms.sessions[token] = values
	}
	values[key] = value
	return nil
}
