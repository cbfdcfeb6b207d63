package typestore

import (
	"reflect"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

// valueCell pairs a boxed value with its type tag and a dup closure that
// snapshots the cell's current contents. The closure is captured
// generically at insertion, which is the only point where the concrete
// type is statically known.
type valueCell struct {
	rtype reflect.Type
	boxed any // *V for the V that produced rtype
	dup   func() valueCell
}

func newValueCell[V any](v V) valueCell {
	p := &v
	return valueCell{
		rtype: reflect.TypeFor[V](),
		boxed: p,
		dup:   func() valueCell { return newValueCell(*p) },
	}
}

// Value is the single-threaded, cloneable counterpart to Store: at most
// one value per type, no lock, and Clone produces an independent snapshot.
// Mutating the original after a Clone never affects the snapshot, and vice
// versa. The zero Value is ready to use.
//
// Value is not safe for concurrent use; use Store when the container is
// shared across goroutines.
type Value struct {
	items map[reflect.Type]valueCell
}

// NewValue creates an empty Value.
func NewValue() *Value {
	return &Value{items: make(map[reflect.Type]valueCell)}
}

// Clone returns an independent copy of the container. Every stored value
// is duplicated through the dup closure captured at its insertion, so
// later mutations on either side stay local.
func (s *Value) Clone() *Value {
	out := &Value{items: make(map[reflect.Type]valueCell, len(s.items))}
	for t, c := range s.items {
		out.items[t] = c.dup()
	}
	return out
}

// ValueSet stores a copy of value under its type identity, replacing any
// prior value of the same type.
func ValueSet[V any](s *Value, value V) {
	if s.items == nil {
		s.items = make(map[reflect.Type]valueCell)
	}
	s.items[reflect.TypeFor[V]()] = newValueCell(value)
}

// ValueGet returns a copy of the stored V.
// Returns ErrKeyNotFound if no value of type V was stored.
func ValueGet[V any](s *Value) (V, error) {
	return ValueWith(s, func(v V) V { return v })
}

// ValueWith calls fn with a copy of the stored V and returns fn's result.
// Returns ErrKeyNotFound if no value of type V was stored.
func ValueWith[V any, R any](s *Value, fn func(V) R) (R, error) {
	var zero R
	c, ok := s.items[reflect.TypeFor[V]()]
	if !ok {
		return zero, typemap.ErrKeyNotFound
	}
	p, ok := c.boxed.(*V)
	if !ok {
		return zero, typemap.ErrTypeMismatch
	}
	return fn(*p), nil
}

// ValueWithMut calls fn with a pointer to the stored V; modifications
// persist in this container but not in any prior Clone.
// Returns ErrKeyNotFound if no value of type V was stored.
func ValueWithMut[V any, R any](s *Value, fn func(*V) R) (R, error) {
	var zero R
	c, ok := s.items[reflect.TypeFor[V]()]
	if !ok {
		return zero, typemap.ErrKeyNotFound
	}
	p, ok := c.boxed.(*V)
	if !ok {
		return zero, typemap.ErrTypeMismatch
	}
	return fn(p), nil
}

// ValueRemove deletes the stored V. Returns true if a value was present.
func ValueRemove[V any](s *Value) bool {
	t := reflect.TypeFor[V]()
	_, ok := s.items[t]
	delete(s.items, t)
	return ok
}

// ValueContains reports whether a value of type V is stored.
func ValueContains[V any](s *Value) bool {
	_, ok := s.items[reflect.TypeFor[V]()]
	return ok
}

// Keys returns the types currently stored.
func (s *Value) Keys() []reflect.Type {
	keys := make([]reflect.Type, 0, len(s.items))
	for t := range s.items {
		keys = append(keys, t)
	}
	return keys
}

// Len returns the number of stored values.
func (s *Value) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the container has no values.
func (s *Value) IsEmpty() bool {
	return len(s.items) == 0
}
