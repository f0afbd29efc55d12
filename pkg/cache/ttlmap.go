package cache

import (
	"sync"
	"time"
)

type ttlEntry[V any] struct {
	value   V
	expires time.Time
}

// TTLMap is a time-bounded key/value memo. It is the one shared
// implementation for every "remember this result for a while" need in
// the codebase; instantiate one per call-site instead of hand-rolling
// module-level maps. Expired entries are dropped lazily on access.
type TTLMap[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[K]ttlEntry[V]
	now     func() time.Time
}

// NewTTLMap creates a map whose entries live for ttl after each Set.
func NewTTLMap[K comparable, V any](ttl time.Duration) *TTLMap[K, V] {
	return &TTLMap[K, V]{
		ttl:     ttl,
		entries: make(map[K]ttlEntry[V]),
		now:     time.Now,
	}
}

// Get returns the live value for key, if any.
func (m *TTLMap[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if m.now().After(e.expires) {
		delete(m.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with a fresh TTL.
func (m *TTLMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = ttlEntry[V]{value: value, expires: m.now().Add(m.ttl)}
}

// Invalidate removes a single key.
func (m *TTLMap[K, V]) Invalidate(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Clear drops every entry.
func (m *TTLMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[K]ttlEntry[V])
}

// Len reports the number of stored entries, expired ones included until
// their next access.
func (m *TTLMap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
