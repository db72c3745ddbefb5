package cursor

import "errors"

// Errors returned by registry operations.
var (
	// ErrTooManyCursors indicates the registry is at MaxCursors.
	ErrTooManyCursors = errors.New("too many cursors")

	// ErrLastCursor indicates an attempt to remove the only cursor.
	ErrLastCursor = errors.New("cannot remove the last cursor")

	// ErrIndexOutOfRange indicates a cursor index outside the registry.
	ErrIndexOutOfRange = errors.New("cursor index out of range")
)
