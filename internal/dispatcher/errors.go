package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler was found for an action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrMissingChar indicates a find action without a target character.
	ErrMissingChar = errors.New("dispatcher: find action needs a character")

	// ErrNotMotion indicates AllCursors was set on a non-motion action.
	ErrNotMotion = errors.New("dispatcher: action cannot apply to all cursors")
)
