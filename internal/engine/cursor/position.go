package cursor

import "fmt"

// Position is a bounded (column, line) coordinate, both zero-based.
// X may equal the line length: the slot after the last character.
type Position struct {
	X int // column, in characters
	Y int // line
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Compare orders positions by line, then column.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Y < other.Y {
		return -1
	}
	if p.Y > other.Y {
		return 1
	}
	if p.X < other.X {
		return -1
	}
	if p.X > other.X {
		return 1
	}
	return 0
}

// Signed converts p to its signed form.
func (p Position) Signed() SignedPosition {
	return SignedPosition{X: p.X, Y: p.Y}
}

// SignedPosition is the result of an unbounded motion. Either coordinate
// may be negative or past the end of the buffer; callers check it before
// committing.
type SignedPosition struct {
	X int
	Y int
}

// String returns a human-readable representation of the position.
func (p SignedPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsNegative reports whether either coordinate is below zero.
func (p SignedPosition) IsNegative() bool {
	return p.X < 0 || p.Y < 0
}

// Position converts p to a Position. ok is false if either coordinate is
// negative, in which case the returned position is clamped at zero.
func (p SignedPosition) Position() (pos Position, ok bool) {
	pos = Position{X: max(p.X, 0), Y: max(p.Y, 0)}
	return pos, !p.IsNegative()
}
