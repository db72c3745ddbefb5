package cursor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/caret/internal/input/mode"
)

// Cursor is a position plus the mode tag of the cursor.
// The cursor does not know the buffer's content.
type Cursor struct {
	// ID identifies the cursor across registry reordering.
	ID uuid.UUID

	X int
	Y int

	Mode mode.Mode
}

// New creates a cursor at (0, 0) in command-normal mode.
func New() Cursor {
	return Cursor{
		ID:   uuid.New(),
		Mode: mode.Normal,
	}
}

// NewAt creates a cursor at p in command-normal mode.
func NewAt(p Position) Cursor {
	c := New()
	c.X, c.Y = p.X, p.Y
	return c
}

// Pos returns the cursor's coordinates.
func (c Cursor) Pos() Position {
	return Position{X: c.X, Y: c.Y}
}

// MoveTo returns a copy of c at p, keeping ID and mode.
func (c Cursor) MoveTo(p Position) Cursor {
	c.X, c.Y = p.X, p.Y
	return c
}

// Clone returns a copy of c with a fresh ID.
func (c Cursor) Clone() Cursor {
	c.ID = uuid.New()
	return c
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d %s)", c.X, c.Y, c.Mode)
}
