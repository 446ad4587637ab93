package storage

import (
	"context"
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	_ = ctx
	v := make([]byte, len(value))
	copy(v, value)
	m.mu.Lock()
	m.data[key] = v
	m.mu.Unlock()
	return nil
}

// Update runs fn under the write lock.
func (m *Memory) Update(ctx context.Context, key string, fn UpdateFunc) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur []byte
	if v, ok := m.data[key]; ok {
		cur = make([]byte, len(v))
		copy(cur, v)
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	v := make([]byte, len(next))
	copy(v, next)
	m.data[key] = v
	return nil
}

// Keys lists stored keys; used by tests and debugging.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out
}

func (m *Memory) String() string { return "memory" }
