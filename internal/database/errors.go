package database

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the underlying SQLite database could not be
	// opened at all. Fatal to the structured-store path; never retried here.
	ErrStoreUnavailable = errors.New("structured store unavailable")

	// ErrDuplicateKey means an add-semantics insert collided with an
	// existing id. It is never silently converted to an update.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTimeout means an operation exceeded the configured bound before
	// the database signalled completion.
	ErrTimeout = errors.New("operation timed out")
)

// OperationError wraps a failed single read or write.
type OperationError struct {
	Op    string
	Table string
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// BatchError wraps a batch that failed at a given operation index. No
// operation in the batch is committed when this is returned.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch operation %d failed: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
