package store

import "sync"

type memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns a Store that forgets everything on exit.
func NewMemory() Store {
	return &memory{values: make(map[string]string)}
}

func (m *memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memory) Set(key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memory) Close() error {
	return nil
}
