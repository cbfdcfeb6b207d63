package typemap

import (
	"fmt"
	"sync"
)

// TypedMap is the homogeneous companion to TypeMap: a thread-safe key→value
// table where every value shares the declared type V. No type erasure is
// involved, so all operations are ordinary methods. Useful for collections
// of handlers or other values sharing one interface type.
type TypedMap[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]V
}

// NewTyped creates an empty TypedMap.
func NewTyped[K comparable, V any]() *TypedMap[K, V] {
	return &TypedMap[K, V]{items: make(map[K]V)}
}

// Set stores value under key, replacing any prior entry.
func (m *TypedMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Get returns a copy of the value stored under key.
// Returns ErrKeyNotFound if no entry exists.
func (m *TypedMap[K, V]) Get(key K) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// With calls fn with a copy of the value stored under key. fn runs while
// the map's lock is held and must not re-enter the same map.
// Returns ErrKeyNotFound if no entry exists.
func (m *TypedMap[K, V]) With(key K, fn func(V)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	fn(v)
	return nil
}

// WithMut calls fn with a pointer to the value stored under key; the
// possibly modified value is written back when fn returns. The pointer is
// valid only for the duration of fn.
// Returns ErrKeyNotFound if no entry exists.
func (m *TypedMap[K, V]) WithMut(key K, fn func(*V)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	fn(&v)
	m.items[key] = v
	return nil
}

// Apply calls fn for every key-value pair under the lock. Iteration stops
// at the first error, which is returned to the caller. Order is
// unspecified. fn must not re-enter the same map.
func (m *TypedMap[K, V]) Apply(fn func(K, V) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.items {
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the entry under key. Returns true if the key was present.
func (m *TypedMap[K, V]) Remove(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	delete(m.items, key)
	return ok
}

// Contains reports whether an entry exists under key.
func (m *TypedMap[K, V]) Contains(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns a snapshot of all keys, in no particular order.
func (m *TypedMap[K, V]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of all values, in no particular order.
func (m *TypedMap[K, V]) Values() []V {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := make([]V, 0, len(m.items))
	for _, v := range m.items {
		values = append(values, v)
	}
	return values
}

// Len returns the number of entries.
func (m *TypedMap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// IsEmpty reports whether the map has no entries.
func (m *TypedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}
