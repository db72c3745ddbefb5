package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidLogLevel indicates an unrecognized logging level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLineEnding indicates an unrecognized line ending.
	ErrInvalidLineEnding = errors.New("invalid line ending")

	// ErrInvalidMaxCursors indicates a cursor limit outside 1..256.
	ErrInvalidMaxCursors = errors.New("invalid max cursors")

	// ErrInvalidCursorStyle indicates an unrecognized cursor style.
	ErrInvalidCursorStyle = errors.New("invalid cursor style")

	// ErrInvalidTimeout indicates a negative script timeout.
	ErrInvalidTimeout = errors.New("invalid script timeout")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
