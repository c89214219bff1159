package keychain

import (
	"sync"
)

// MemoryStore is an in-memory Store for tests. Failures can be injected
// per operation.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string

	SetErr    error
	DeleteErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

func (s *MemoryStore) Set(alias, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return storeErr(s.SetErr, "set", alias)
	}
	s.tokens[alias] = token
	return nil
}

func (s *MemoryStore) Get(alias string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.tokens[alias]
	if !ok {
		return "", notFound(alias)
	}
	return val, nil
}

func (s *MemoryStore) Delete(alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return storeErr(s.DeleteErr, "delete", alias)
	}
	delete(s.tokens, alias)
	return nil
}

// Len returns the number of stored tokens.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
