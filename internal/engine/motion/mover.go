package motion

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Position is a bounded (column, line) coordinate.
	Position = cursor.Position

	// SignedPosition is an unbounded motion result.
	SignedPosition = cursor.SignedPosition
)

// Mover computes motions for the current cursor of a registry.
// It holds no state of its own; the buffer is never modified.
type Mover struct {
	buf buffer.Reader
	reg *cursor.Registry
}

// New creates a Mover over buf for the cursors in reg.
func New(buf buffer.Reader, reg *cursor.Registry) *Mover {
	return &Mover{buf: buf, reg: reg}
}

// Buffer returns the buffer the mover reads.
func (m *Mover) Buffer() buffer.Reader {
	return m.buf
}

// Registry returns the registry the mover reads and, for Goto, writes.
func (m *Mover) Registry() *cursor.Registry {
	return m.reg
}

// Pos returns the current cursor's position as stored.
func (m *Mover) Pos() Position {
	return m.reg.Current().Pos()
}

// origin returns the current cursor's position with its line bounded to
// the buffer. A cursor may point past the last line after the buffer is
// replaced underneath it. The column is left alone.
func (m *Mover) origin() Position {
	p := m.Pos()
	if n := m.buf.LineCount(); p.Y >= n {
		p.Y = max(n-1, 0)
	}
	return p
}

// Char returns the character under the current cursor. ok is false when
// the cursor rests after the last character of its line.
func (m *Mover) Char() (c rune, ok bool) {
	p := m.origin()
	if !m.hasLine(p.Y) {
		return 0, false
	}
	line := m.buf.Line(p.Y)
	if p.X < 0 || p.X >= line.Len() {
		return 0, false
	}
	return line.RuneAt(p.X), true
}

// Goto overwrites the current cursor's coordinates. It does not bound p;
// the caller is responsible for its validity.
func (m *Mover) Goto(p Position) {
	m.reg.Goto(p)
}

// Clamp bounds an unbounded result to the buffer: the line to
// [0, LineCount-1] and the column to [0, line length].
func (m *Mover) Clamp(p SignedPosition) Position {
	n := m.buf.LineCount()
	if n == 0 {
		return Position{}
	}
	y := min(max(p.Y, 0), n-1)
	x := min(max(p.X, 0), m.lineLen(y))
	return Position{X: x, Y: y}
}

func (m *Mover) hasLine(y int) bool {
	return y >= 0 && y < m.buf.LineCount()
}

// lineLen returns the length of line y; lines outside the buffer count
// as empty.
func (m *Mover) lineLen(y int) int {
	if !m.hasLine(y) {
		return 0
	}
	return m.buf.Line(y).Len()
}

// count normalizes a bounded-motion count; negative counts do not move.
func count(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
