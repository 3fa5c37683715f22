package storage

import "sync"

// Memory is an in-process Backend, used by tests and as a degraded
// fallback when no durable store can be opened.
type Memory struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.docs[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (m *Memory) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = append([]byte(nil), value...)
}
