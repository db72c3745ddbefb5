package engine

import (
	"io"
	"sync"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/motion"
	"github.com/dshills/caret/internal/input/mode"
	"github.com/dshills/caret/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Position is a (column, line) coordinate.
	Position = cursor.Position

	// SignedPosition is the result of an unbounded motion.
	SignedPosition = cursor.SignedPosition

	// Cursor is a position plus a mode tag.
	Cursor = cursor.Cursor

	// Mover computes motions for the current cursor.
	Mover = motion.Mover

	// LineEnding specifies the line ending style.
	LineEnding = buffer.LineEnding

	// RevisionID uniquely identifies a buffer revision.
	RevisionID = buffer.RevisionID
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
	LineEndingCR   = buffer.LineEndingCR
)

// Editor owns a buffer and the cursor registry that moves over it.
//
// Motion queries run under a shared lock and may proceed concurrently;
// cursor updates and buffer replacement take the exclusive lock, so a
// query never observes a buffer change in flight.
type Editor struct {
	mu sync.RWMutex

	buf *buffer.Buffer
	reg *cursor.Registry

	maxCursors int
	logger     *logging.Logger

	// Initialization
	initContent string
	lineEnding  buffer.LineEnding
	cursors     []cursor.Cursor
}

// New creates an editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		maxCursors: cursor.MaxCursors,
		lineEnding: buffer.LineEndingLF,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.Discard()
	}
	e.buf = buffer.NewBufferFromString(e.initContent, buffer.WithLineEnding(e.lineEnding))
	if len(e.cursors) > e.maxCursors {
		e.logger.Warn("dropping %d initial cursors past the limit of %d", len(e.cursors)-e.maxCursors, e.maxCursors)
		e.cursors = e.cursors[:e.maxCursors]
	}
	e.reg = cursor.NewRegistry(e.cursors...)
	e.initContent = ""
	e.cursors = nil

	return e
}

// NewFromReader creates an editor with content read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Editor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)
	opts = append([]Option{WithLineEnding(buffer.DetectLineEnding(text))}, opts...)
	opts = append(opts, WithContent(text))
	return New(opts...), nil
}

// View runs fn with a Mover under the shared lock. fn must only query:
// calling Goto from inside View is a data race.
func (e *Editor) View(fn func(m *motion.Mover)) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn(motion.New(e.buf, e.reg))
}

// Update runs fn with a Mover and the registry under the exclusive lock.
func (e *Editor) Update(fn func(m *motion.Mover, reg *cursor.Registry) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(motion.New(e.buf, e.reg), e.reg)
}

// Current returns a copy of the current cursor.
func (e *Editor) Current() Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Current()
}

// Cursors returns a copy of every cursor and the current index.
func (e *Editor) Cursors() ([]Cursor, int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.reg.Cursors(), e.reg.Index()
}

// Goto moves the current cursor to p without bounds checks.
func (e *Editor) Goto(p Position) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.Goto(p)
	e.logger.Debug("goto %v", p)
}

// Advance selects the next cursor, wrapping around.
func (e *Editor) Advance() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.Advance()
	return e.reg.Index()
}

// SetMode replaces the current cursor's mode tag.
func (e *Editor) SetMode(m mode.Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.SetMode(m)
}

// AddCursor appends c to the registry.
func (e *Editor) AddCursor(c Cursor) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reg.Len() >= e.maxCursors {
		return ErrTooManyCursors
	}
	if err := e.reg.Add(c); err != nil {
		return err
	}
	e.logger.Debug("added cursor %s at %v (%d total)", c.ID, c.Pos(), e.reg.Len())
	return nil
}

// RemoveCursor removes the cursor at index i.
func (e *Editor) RemoveCursor(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Remove(i)
}

// Buffer Operations

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// LineText returns the text of a line.
func (e *Editor) LineText(line int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	text, err := e.buf.LineText(line)
	if err != nil {
		return "", ErrLineOutOfRange
	}
	return text, nil
}

// Text returns the full buffer content.
func (e *Editor) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// SetText replaces the buffer content. Cursor coordinates are left as
// they are; motions bound a cursor's line to the new buffer when they
// read it.
func (e *Editor) SetText(text string) RevisionID {
	e.mu.Lock()
	defer e.mu.Unlock()
	rev := e.buf.SetText(text)
	e.logger.Debug("buffer replaced: %d lines, revision %d", e.buf.LineCount(), rev)
	return rev
}

// Snapshot returns an immutable view of the buffer.
func (e *Editor) Snapshot() *buffer.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Snapshot()
}

// RevisionID returns the buffer's current revision.
func (e *Editor) RevisionID() RevisionID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.RevisionID()
}

// MaxCursors returns the configured cursor limit.
func (e *Editor) MaxCursors() int {
	return e.maxCursors
}

// Logger returns the editor's logger.
func (e *Editor) Logger() *logging.Logger {
	return e.logger
}
