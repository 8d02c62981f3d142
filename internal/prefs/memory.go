package prefs

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store, used when Redis is not configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[Key]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[Key]string)}
}

func (s *MemoryStore) Get(_ context.Context, visitor string, key Key) (string, bool, error) {
	if _, ok := allowed[key]; !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[visitor][key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, visitor string, key Key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[visitor] == nil {
		s.data[visitor] = make(map[Key]string)
	}
	s.data[visitor][key] = value
	return nil
}
