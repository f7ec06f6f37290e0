package store

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound - no canonical location with the given id
	ErrLocationNotFound = errors.New("location not found")

	// ErrSourceLocationNotFound - no imported source location with the given id
	ErrSourceLocationNotFound = errors.New("source location not found")

	// ErrNoSourceLocation - every imported location is already matched or dismissed
	ErrNoSourceLocation = errors.New("no unmatched source location available")

	// ErrTaskQueueEmpty - no unresolved merge task matches the request
	ErrTaskQueueEmpty = errors.New("merge task queue is empty")
)

// LookupError wraps a failed read with the operation and its parameters
// so the reviewer sees what was being fetched, not just the driver error.
type LookupError struct {
	Op     string
	Params map[string]interface{}
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: lookup failed with params %v: %s", e.Op, e.Params, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// WriteError wraps a failed mutation the same way.
type WriteError struct {
	Op     string
	Params map[string]interface{}
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write failed with params %v: %s", e.Op, e.Params, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
