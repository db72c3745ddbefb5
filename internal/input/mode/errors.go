package mode

import "errors"

// Errors returned by mode parsing.
var (
	// ErrUnknownMode indicates a mode string could not be parsed.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownCursorStyle indicates a cursor style name is not recognized.
	ErrUnknownCursorStyle = errors.New("unknown cursor style")
)
