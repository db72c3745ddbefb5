package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/caret/internal/engine/buffer"
)

// DefaultTabWidth is the tab stop interval when none is configured.
const DefaultTabWidth = 4

// RuneWidth returns the number of cells r occupies when drawn at cell
// column col. Tabs advance to the next multiple of tabWidth. Control and
// zero-width runes take one cell so every rune stays addressable.
func RuneWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		if tabWidth < 1 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - col%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// CellColumn returns the cell column, relative to the start of the line,
// at which rune column x is drawn. Columns past the end of the line are
// drawn just after the last rune.
func CellColumn(line buffer.Line, x, tabWidth int) int {
	col := 0
	for i := 0; i < min(x, line.Len()); i++ {
		col += RuneWidth(line.RuneAt(i), col, tabWidth)
	}
	return col
}

// displayRune returns what is drawn in the first cell of r.
func displayRune(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r < ' ' || r == 0x7F:
		return '?'
	case runewidth.RuneWidth(r) == 0:
		return ' '
	}
	return r
}
