package motion

// After returns the position n characters after p in flattened order.
// Lines are joined without a separator: the character after the last one
// on a line is the first character of the next non-empty line. ok is
// false when the motion runs past the end of the buffer or n < 0.
//
// A p resting after the last character (X == line length) is accepted and
// resolved by continuing on the following lines.
func (m *Mover) After(n int, p Position) (Position, bool) {
	if n < 0 {
		return Position{}, false
	}

	lineLen := m.lineLen(p.Y)
	if p.X+n < lineLen {
		return Position{X: p.X + n, Y: p.Y}, true
	}

	lines := m.buf.LineCount()
	if p.Y+1 >= lines {
		return Position{}, false
	}

	rest := n + p.X - lineLen
	for y := p.Y + 1; ; y++ {
		l := m.lineLen(y)
		if rest < l {
			return Position{X: rest, Y: y}, true
		}
		if y+1 >= lines {
			return Position{}, false
		}
		rest -= l
	}
}

// Before returns the position n characters before p in flattened order,
// the mirror of After. Before(0, p) is always p. ok is false when fewer
// than n characters precede p or n < 0.
func (m *Mover) Before(n int, p Position) (Position, bool) {
	if n < 0 {
		return Position{}, false
	}
	if p.X >= n {
		return Position{X: p.X - n, Y: p.Y}, true
	}
	if p.Y == 0 {
		return Position{}, false
	}

	rest := n - p.X
	for y := p.Y - 1; ; y-- {
		l := m.lineLen(y)
		if rest <= l {
			return Position{X: l - rest, Y: y}, true
		}
		if y == 0 {
			return Position{}, false
		}
		rest -= l
	}
}

// Next returns the position n characters after the current cursor.
func (m *Mover) Next(n int) (Position, bool) {
	return m.After(n, m.origin())
}

// Previous returns the position n characters before the current cursor.
func (m *Mover) Previous(n int) (Position, bool) {
	return m.Before(n, m.origin())
}
