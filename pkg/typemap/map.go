package typemap

import (
	"fmt"
	"sync"
)

// TypeMap is a thread-safe key→value table whose values may be of any type.
// Each entry remembers the static type it was stored under; accessors check
// that identity before handing the value back. A single mutex guards the
// whole table, so operations on different keys still serialize.
type TypeMap[K comparable] struct {
	mu    sync.Mutex
	items map[K]anyValue
}

// New creates an empty TypeMap.
func New[K comparable]() *TypeMap[K] {
	return &TypeMap[K]{items: make(map[K]anyValue)}
}

// Set stores a copy of value under key, replacing any prior entry
// wholesale. The entry is tagged with the static type V: storing an
// interface value records the interface's identity, not the dynamic type
// inside it.
func Set[V any, K comparable](m *TypeMap[K], key K, value V) {
	cell := newValue(value)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = cell
}

// Get returns a copy of the value stored under key.
//
// Returns ErrKeyNotFound if no entry exists, ErrTypeMismatch if the entry
// was stored under a type other than V.
func Get[V any, K comparable](m *TypeMap[K], key K) (V, error) {
	return With(m, key, func(v V) V { return v })
}

// With calls fn with a copy of the value stored under key and returns fn's
// result. The copy keeps the access read-only; use WithMut to modify the
// stored value in place. fn runs while the map's lock is held and must not
// re-enter the same map.
//
// Returns ErrKeyNotFound if no entry exists, ErrTypeMismatch if the entry
// was stored under a type other than V.
func With[V any, K comparable, R any](m *TypeMap[K], key K, fn func(V) R) (R, error) {
	var zero R
	m.mu.Lock()
	defer m.mu.Unlock()
	cell, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	v, ok := valueRef[V](cell)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return fn(*v), nil
}

// WithMut calls fn with a pointer to the value stored under key and returns
// fn's result. Modifications through the pointer persist in the map. The
// pointer is valid only for the duration of fn; fn runs while the map's
// lock is held and must not re-enter the same map.
//
// Returns ErrKeyNotFound if no entry exists, ErrTypeMismatch if the entry
// was stored under a type other than V.
func WithMut[V any, K comparable, R any](m *TypeMap[K], key K, fn func(*V) R) (R, error) {
	var zero R
	m.mu.Lock()
	defer m.mu.Unlock()
	cell, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	v, ok := valueRef[V](cell)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return fn(v), nil
}

// Remove deletes the entry under key. Returns true if the key was present.
func (m *TypeMap[K]) Remove(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	delete(m.items, key)
	return ok
}

// Contains reports whether an entry exists under key, regardless of its
// stored type.
func (m *TypeMap[K]) Contains(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns a snapshot of all keys, in no particular order.
func (m *TypeMap[K]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (m *TypeMap[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// IsEmpty reports whether the map has no entries.
func (m *TypeMap[K]) IsEmpty() bool {
	return m.Len() == 0
}
