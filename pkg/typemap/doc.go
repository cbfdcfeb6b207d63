// Package typemap provides thread-safe heterogeneous containers: values of
// arbitrary, mutually unrelated types stored under a single key space and
// recovered later with a runtime check that the type requested at the call
// site matches the type that was stored.
//
// Three containers live here:
//
//   - TypeMap stores one value per key, accessible by its exact type only.
//   - TraitMap stores one value per key under two views at once: its exact
//     concrete type, and a capability interface it was registered against.
//   - TypedMap is the homogeneous variant; all values share one declared
//     type and no erasure is involved.
//
// Go methods cannot carry type parameters, so typed operations are
// package-level functions taking the container as their first argument:
//
//	m := typemap.New[string]()
//	typemap.Set(m, "answer", 42)
//	n, err := typemap.Get[int](m, "answer")
//
// Every container serializes access through a single mutex; callbacks
// passed to With-style accessors run while that lock is held and must not
// re-enter the same container.
package typemap
