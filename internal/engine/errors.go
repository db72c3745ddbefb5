package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrLineOutOfRange indicates a line index outside the buffer.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrTooManyCursors indicates the configured cursor limit was reached.
	ErrTooManyCursors = errors.New("too many cursors")
)
