package interfaces

import "errors"

// ErrNotFound is returned by cache repositories when no entry exists for
// the requested key. Both backends wrap this sentinel so callers can test
// with errors.Is without depending on a concrete backend.
var ErrNotFound = errors.New("cache entry not found")
