package motion

// Right returns the position n columns right of the cursor, bounded to
// the current line's length. It never moves to another line.
func (m *Mover) Right(n int) Position {
	p := m.origin()
	return m.boundHorizontal(Position{X: p.X + count(n), Y: p.Y})
}

// Left returns the position n columns left of the cursor, stopping at
// column 0. It never moves to another line.
func (m *Mover) Left(n int) Position {
	p := m.origin()
	n = count(n)
	if n <= p.X {
		return Position{X: p.X - n, Y: p.Y}
	}
	return Position{X: 0, Y: p.Y}
}

// Up returns the position n lines above the cursor, stopping at line 0.
// The stored column is kept as is, even if the destination line is
// shorter.
func (m *Mover) Up(n int) Position {
	p := m.origin()
	n = count(n)
	if n <= p.Y {
		return Position{X: p.X, Y: p.Y - n}
	}
	return Position{X: p.X, Y: 0}
}

// Down returns the position n lines below the cursor, stopping at the
// last line. The column is bounded against the destination line.
func (m *Mover) Down(n int) Position {
	p := m.origin()
	lines := m.buf.LineCount()
	if lines == 0 {
		return Position{}
	}
	y := min(p.Y+count(n), lines-1)
	return m.boundHorizontal(Position{X: p.X, Y: y})
}

// RightUnbounded returns the cursor position shifted n columns right,
// without consulting the buffer.
func (m *Mover) RightUnbounded(n int) SignedPosition {
	p := m.Pos()
	return SignedPosition{X: p.X + n, Y: p.Y}
}

// LeftUnbounded returns the cursor position shifted n columns left.
// The column may be negative.
func (m *Mover) LeftUnbounded(n int) SignedPosition {
	p := m.Pos()
	return SignedPosition{X: p.X - n, Y: p.Y}
}

// UpUnbounded returns the cursor position shifted n lines up.
// The line may be negative.
func (m *Mover) UpUnbounded(n int) SignedPosition {
	p := m.Pos()
	return SignedPosition{X: p.X, Y: p.Y - n}
}

// DownUnbounded returns the cursor position shifted n lines down.
// The line may be past the end of the buffer.
func (m *Mover) DownUnbounded(n int) SignedPosition {
	p := m.Pos()
	return SignedPosition{X: p.X, Y: p.Y + n}
}

// boundHorizontal clamps p.X to the length of line p.Y.
func (m *Mover) boundHorizontal(p Position) Position {
	if l := m.lineLen(p.Y); p.X > l {
		p.X = l
	}
	return p
}
