package engine

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/logging"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content of the editor.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithLineEnding sets the line ending used when joining lines.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Editor) {
		e.lineEnding = ending
	}
}

// WithCursors sets the initial cursors. The first one is current.
func WithCursors(cursors ...cursor.Cursor) Option {
	return func(e *Editor) {
		e.cursors = append([]cursor.Cursor(nil), cursors...)
	}
}

// WithMaxCursors limits the number of cursors, up to cursor.MaxCursors.
func WithMaxCursors(max int) Option {
	return func(e *Editor) {
		if max > 0 && max <= cursor.MaxCursors {
			e.maxCursors = max
		}
	}
}

// WithLogger sets the editor's logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l.WithComponent("engine")
		}
	}
}
