package buffer

// Reader is the read-only capability the motion engine consumes.
//
// Line panics when index is outside [0, LineCount()); callers keep line
// indices in range by construction.
type Reader interface {
	// LineCount returns the number of lines.
	LineCount() int

	// Line returns the line at index.
	Line(index int) Line
}

// Line is a single line of text without its terminator.
// Columns index characters (runes), not bytes.
type Line interface {
	// Len returns the number of characters on the line.
	Len() int

	// RuneAt returns the character at column col, 0 <= col < Len().
	RuneAt(col int) rune
}

// line is the Line implementation shared by Buffer and Snapshot.
// Lines are never mutated after creation.
type line []rune

func (l line) Len() int {
	return len(l)
}

func (l line) RuneAt(col int) rune {
	return l[col]
}

// String returns the line text.
func (l line) String() string {
	return string(l)
}

// Text returns the text of a Line, using String when available.
func Text(l Line) string {
	if s, ok := l.(interface{ String() string }); ok {
		return s.String()
	}
	runes := make([]rune, l.Len())
	for i := range runes {
		runes[i] = l.RuneAt(i)
	}
	return string(runes)
}

// FromStrings builds a lightweight Reader over a fixed slice of lines.
// Useful for tests and for hosts that already hold their text as lines.
func FromStrings(lines ...string) Reader {
	return newSnapshot(splitLines(lines), 0, LineEndingLF)
}
