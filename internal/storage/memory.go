package storage

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Memory is a Storage held in process memory.
//
// The mutex only protects the map itself. Sequences of Get and Set by
// callers are not atomic.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping() error {
	return nil
}
