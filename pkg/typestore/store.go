package typestore

import (
	"reflect"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

// Store is a thread-safe registry holding at most one value per type. The
// type is the key: Set[Config] and Get[Config] address the same slot
// without any caller-chosen name. Storage delegates to a TypeMap keyed by
// reflect.Type, so locking and type-checking behavior are identical to
// TypeMap's.
type Store struct {
	items *typemap.TypeMap[reflect.Type]
}

// New creates an empty Store.
func New() *Store {
	return &Store{items: typemap.New[reflect.Type]()}
}

// Set stores a copy of value under its type identity, replacing any prior
// value of the same type.
func Set[V any](s *Store, value V) {
	typemap.Set(s.items, reflect.TypeFor[V](), value)
}

// Get returns a copy of the stored V.
// Returns ErrKeyNotFound if no value of type V was stored.
func Get[V any](s *Store) (V, error) {
	return typemap.Get[V](s.items, reflect.TypeFor[V]())
}

// With calls fn with a copy of the stored V and returns fn's result. fn
// runs while the store's lock is held and must not re-enter the store.
// Returns ErrKeyNotFound if no value of type V was stored.
func With[V any, R any](s *Store, fn func(V) R) (R, error) {
	return typemap.With(s.items, reflect.TypeFor[V](), fn)
}

// WithMut calls fn with a pointer to the stored V; modifications persist.
// The pointer is valid only for the duration of fn, which runs under the
// store's lock and must not re-enter the store.
// Returns ErrKeyNotFound if no value of type V was stored.
func WithMut[V any, R any](s *Store, fn func(*V) R) (R, error) {
	return typemap.WithMut(s.items, reflect.TypeFor[V](), fn)
}

// Remove deletes the stored V. Returns true if a value was present.
func Remove[V any](s *Store) bool {
	return s.items.Remove(reflect.TypeFor[V]())
}

// Contains reports whether a value of type V is stored.
func Contains[V any](s *Store) bool {
	return s.items.Contains(reflect.TypeFor[V]())
}

// Keys returns a snapshot of the types currently stored.
func (s *Store) Keys() []reflect.Type {
	return s.items.Keys()
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	return s.items.Len()
}

// IsEmpty reports whether the store has no values.
func (s *Store) IsEmpty() bool {
	return s.items.IsEmpty()
}
