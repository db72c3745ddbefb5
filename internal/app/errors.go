// Package app wires the caret editor together and runs it.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoTerminal indicates Run was called without a terminal.
	ErrNoTerminal = errors.New("no terminal available")
)

// InitError represents an error during component initialization.
type InitError struct {
	Component string
	Err       error
}

// Error implements the error interface.
func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}
