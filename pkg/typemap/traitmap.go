package typemap

import (
	"fmt"
	"reflect"
	"sync"
)

// traitEntry is one stored value materialized as two independent cells:
// the concrete cell boxes a copy under the value's exact type, the
// capability cell boxes a second copy behind the interface it was
// registered against. Entries are built whole by SetTrait and replaced
// whole; the two cells are never updated independently.
type traitEntry struct {
	concrete   anyValue
	capability anyValue
}

// TraitMap is a thread-safe key→value table whose entries can be accessed
// two ways: by the exact concrete type stored, or polymorphically through
// the capability interface recorded at insertion. The two views are
// independent copies of the inserted value — modifying one never changes
// what the other returns.
//
// A single mutex guards the whole table. Callbacks passed to the With
// accessors run while that lock is held and must not re-enter the map.
type TraitMap[K comparable] struct {
	mu    sync.Mutex
	items map[K]traitEntry
}

// NewTraitMap creates an empty TraitMap.
func NewTraitMap[K comparable]() *TraitMap[K] {
	return &TraitMap[K]{items: make(map[K]traitEntry)}
}

// SetTrait stores value under key, readable later either as its concrete
// type U (WithConcrete, WithConcreteMut) or through the capability
// interface C (WithTrait). Two copies of value are made here, one per
// view; if U is a pointer type the copies alias the same underlying data.
// Any prior entry under key is replaced wholesale.
//
// Go cannot state "U implements C" in the generic signature, so the
// obligation is checked at insertion; a value that does not implement C is
// rejected with a wrapped ErrTypeMismatch and nothing is stored.
func SetTrait[C any, K comparable, U any](m *TraitMap[K], key K, value U) error {
	capView, ok := any(value).(C)
	if !ok {
		return fmt.Errorf("%w: %T does not implement %v", ErrTypeMismatch, value, reflect.TypeFor[C]())
	}
	entry := traitEntry{
		concrete:   newValue(value),
		capability: newValue(capView),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = entry
	return nil
}

// WithConcrete calls fn with a copy of the concrete view stored under key
// and returns fn's result. The copy keeps the access read-only; use
// WithConcreteMut to modify the stored value.
//
// Returns ErrKeyNotFound if no entry exists, ErrTypeMismatch if the entry's
// concrete type is not V.
func WithConcrete[V any, K comparable, R any](m *TraitMap[K], key K, fn func(V) R) (R, error) {
	var zero R
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	v, ok := valueRef[V](entry.concrete)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return fn(*v), nil
}

// WithConcreteMut calls fn with a pointer to the concrete view stored under
// key and returns fn's result. Modifications persist in the concrete view
// only; the capability view is an independent copy and keeps its prior
// state. The pointer is valid only for the duration of fn.
//
// Returns ErrKeyNotFound if no entry exists, ErrTypeMismatch if the entry's
// concrete type is not V.
func WithConcreteMut[V any, K comparable, R any](m *TraitMap[K], key K, fn func(*V) R) (R, error) {
	var zero R
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	v, ok := valueRef[V](entry.concrete)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return fn(v), nil
}

// WithTrait calls fn with the capability view stored under key and returns
// fn's result. Matching is by the capability identity recorded at
// insertion: a request for an interface the entry was not registered
// against fails with ErrTypeMismatch even if the stored value happens to
// implement it.
//
// Returns ErrKeyNotFound if no entry exists.
func WithTrait[C any, K comparable, R any](m *TraitMap[K], key K, fn func(C) R) (R, error) {
	var zero R
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	v, ok := valueRef[C](entry.capability)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return fn(*v), nil
}

// Remove deletes the entry under key, discarding both views. Returns true
// if the key was present.
func (m *TraitMap[K]) Remove(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	delete(m.items, key)
	return ok
}

// Contains reports whether an entry exists under key.
func (m *TraitMap[K]) Contains(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Keys returns a snapshot of all keys, in no particular order.
func (m *TraitMap[K]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (m *TraitMap[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// IsEmpty reports whether the map has no entries.
func (m *TraitMap[K]) IsEmpty() bool {
	return m.Len() == 0
}
