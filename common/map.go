package common

import "sync"

// Map is a concurrent map. It wraps the standard library's map with a mutex for concurrent access.
type Map[K comparable, V any] struct {
	m  map[K]V
	mu sync.RWMutex
}

// NewMap returns a new Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m: make(map[K]V),
	}
}

// Length returns the size of m.
func (m *Map[K, V]) Length() int {
	m.mu.RLock()
	c := len(m.m)
	m.mu.RUnlock()
	return c
}

// Upsert runs fn on the value at key k while holding the write lock.
// If k is not set, fn receives init() instead. The value fn leaves behind is stored.
func (m *Map[K, V]) Upsert(k K, init func() V, fn func(*V)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.m[k]
	if !ok {
		v = init()
	}
	fn(&v)
	m.m[k] = v
}

