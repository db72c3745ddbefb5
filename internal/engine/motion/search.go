package motion

// NextOccurrence returns the column of the n-th occurrence of c on the
// cursor's line, scanning right from the cursor column inclusive. ok is
// false if the line holds fewer than n matches from there, or n <= 0.
// The scan never crosses into another line.
func (m *Mover) NextOccurrence(c rune, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}

	p := m.origin()
	if !m.hasLine(p.Y) {
		return 0, false
	}
	line := m.buf.Line(p.Y)
	found := 0
	for x := max(p.X, 0); x < line.Len(); x++ {
		if line.RuneAt(x) != c {
			continue
		}
		found++
		if found == n {
			return x, true
		}
	}
	return 0, false
}

// PreviousOccurrence returns the column of the n-th occurrence of c on
// the cursor's line, scanning left from the column before the cursor.
// ok is false if fewer than n matches precede the cursor, or n <= 0.
func (m *Mover) PreviousOccurrence(c rune, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}

	p := m.origin()
	if !m.hasLine(p.Y) {
		return 0, false
	}
	line := m.buf.Line(p.Y)
	found := 0
	for x := min(p.X, line.Len()) - 1; x >= 0; x-- {
		if line.RuneAt(x) != c {
			continue
		}
		found++
		if found == n {
			return x, true
		}
	}
	return 0, false
}
