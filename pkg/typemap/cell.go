package typemap

import "reflect"

// anyValue is a type-erased cell: one stored value paired with the
// reflect.Type it was stored under. The tag and the box are set together
// by newValue and never independently; recovery is refused entirely when
// the requested type's tag differs, so a mismatched request can never
// observe the payload.
type anyValue struct {
	rtype reflect.Type
	boxed any // always *T for the T that produced rtype
}

// newValue boxes a copy of v tagged with its static type. When T is an
// interface type the tag is the interface's own identity, not the identity
// of the dynamic value inside it.
func newValue[T any](v T) anyValue {
	return anyValue{rtype: reflect.TypeFor[T](), boxed: &v}
}

// isType reports whether the cell was stored under t. O(1), no payload
// access.
func (a anyValue) isType(t reflect.Type) bool {
	return a.rtype == t
}

// valueRef returns a pointer to the payload as T, or false when the cell
// was stored under a different type.
func valueRef[T any](a anyValue) (*T, bool) {
	if !a.isType(reflect.TypeFor[T]()) {
		return nil, false
	}
	p, ok := a.boxed.(*T)
	return p, ok
}
