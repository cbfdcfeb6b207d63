// Package typestore provides containers keyed by type itself: at most one
// value per type, with the key derived from the value's type identity
// rather than chosen by the caller. This is the natural shape for a
// service locator or dependency-injection registry.
//
// Store is the thread-safe variant, built on typemap.TypeMap with
// reflect.Type keys. Value is the single-threaded variant that trades the
// lock for cheap Clone snapshots.
package typestore
