package typemap

import "errors"

// Container access errors. Both are ordinary, recoverable outcomes; the
// containers never return a default or coerced value in their place.
// KeyNotFound errors are wrapped with a rendering of the offending key,
// so match with errors.Is rather than equality.
var (
	ErrKeyNotFound  = errors.New("key not found in store")
	ErrTypeMismatch = errors.New("type mismatch for the requested key")
)
