package cache

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded means a write would push the store past its configured
// quota. Always propagated; settings writes must never be lost silently.
var ErrQuotaExceeded = errors.New("cache quota exceeded")

// SerializationError wraps a value that could not be encoded for storage.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize value for key %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
