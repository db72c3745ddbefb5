package renderer

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/input/mode"
)

// Styles holds the styles a View draws with.
type Styles struct {
	Text      tcell.Style
	Secondary tcell.Style
	Gutter    tcell.Style
	Filler    tcell.Style
	Status    tcell.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Secondary: tcell.StyleDefault.Reverse(true),
		Gutter:    tcell.StyleDefault.Dim(true),
		Filler:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Status:    tcell.StyleDefault.Reverse(true),
	}
}

// View renders a buffer and its cursors onto a Screen.
type View struct {
	screen Screen

	top         int
	lineNumbers bool
	statusLine  bool
	tabWidth    int
	styles      Styles
	cursorStyle func(mode.Family) mode.CursorStyle
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithLineNumbers enables or disables the line number gutter.
func WithLineNumbers(enabled bool) ViewOption {
	return func(v *View) {
		v.lineNumbers = enabled
	}
}

// WithStatusLine enables or disables the status line on the last row.
func WithStatusLine(enabled bool) ViewOption {
	return func(v *View) {
		v.statusLine = enabled
	}
}

// WithTabWidth sets the tab stop interval.
func WithTabWidth(width int) ViewOption {
	return func(v *View) {
		if width > 0 {
			v.tabWidth = width
		}
	}
}

// WithStyles sets the drawing styles.
func WithStyles(s Styles) ViewOption {
	return func(v *View) {
		v.styles = s
	}
}

// WithCursorStyle sets how a mode family maps to a cursor shape.
func WithCursorStyle(fn func(mode.Family) mode.CursorStyle) ViewOption {
	return func(v *View) {
		if fn != nil {
			v.cursorStyle = fn
		}
	}
}

// NewView creates a view drawing onto screen.
func NewView(screen Screen, opts ...ViewOption) *View {
	v := &View{
		screen:      screen,
		statusLine:  true,
		tabWidth:    DefaultTabWidth,
		styles:      DefaultStyles(),
		cursorStyle: mode.DefaultCursorStyle,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetOptions applies opts to an existing view, e.g. after a config reload.
func (v *View) SetOptions(opts ...ViewOption) {
	for _, opt := range opts {
		opt(v)
	}
}

// Top returns the first visible line.
func (v *View) Top() int {
	return v.top
}

// textRows returns the number of rows available for buffer lines.
func (v *View) textRows() int {
	_, h := v.screen.Size()
	if v.statusLine {
		h--
	}
	return max(h, 0)
}

// gutterWidth returns the width of the line number column including
// its trailing space.
func (v *View) gutterWidth(lineCount int) int {
	if !v.lineNumbers {
		return 0
	}
	return len(strconv.Itoa(max(lineCount, 1))) + 1
}

// scrollTo adjusts the top line so that line y is visible.
func (v *View) scrollTo(y, rows int) {
	switch {
	case rows <= 0:
		return
	case y < v.top:
		v.top = y
	case y >= v.top+rows:
		v.top = y - rows + 1
	}
}

// Render draws buf and cursors. cursors[current] is the current cursor.
func (v *View) Render(buf buffer.Reader, cursors []cursor.Cursor, current int, status string) {
	width, _ := v.screen.Size()
	rows := v.textRows()
	lineCount := buf.LineCount()
	gutter := v.gutterWidth(lineCount)

	var cur cursor.Cursor
	hasCurrent := current >= 0 && current < len(cursors)
	if hasCurrent {
		cur = cursors[current]
		v.scrollTo(cur.Y, rows)
	}
	if v.top >= lineCount {
		v.top = max(lineCount-1, 0)
	}

	v.screen.Clear()

	for row := 0; row < rows; row++ {
		y := v.top + row
		if y >= lineCount {
			v.drawString(0, row, width, "~", v.styles.Filler)
			continue
		}
		if gutter > 0 {
			num := strconv.Itoa(y + 1)
			v.drawString(gutter-1-len(num), row, width, num, v.styles.Gutter)
		}
		v.drawLine(buf.Line(y), gutter, row, width)
	}

	for i, c := range cursors {
		if i == current {
			continue
		}
		if col, row, ok := v.cellFor(buf, c.Pos(), gutter, rows, width); ok {
			v.screen.SetCell(col, row, runeAt(buf, c.Pos()), v.styles.Secondary)
		}
	}

	if v.statusLine {
		_, h := v.screen.Size()
		v.drawStatus(h-1, width, status)
	}

	v.showCursor(buf, cur, hasCurrent, gutter, rows, width)
	v.screen.Show()
}

func (v *View) showCursor(buf buffer.Reader, c cursor.Cursor, ok bool, gutter, rows, width int) {
	if !ok {
		v.screen.HideCursor()
		return
	}
	col, row, visible := v.cellFor(buf, c.Pos(), gutter, rows, width)
	style := v.cursorStyle(c.Mode.Family)
	if !visible || style == mode.CursorHidden {
		v.screen.HideCursor()
		return
	}
	v.screen.SetCursorStyle(style)
	v.screen.ShowCursor(col, row)
}

// cellFor maps a buffer position to a screen cell.
func (v *View) cellFor(buf buffer.Reader, p cursor.Position, gutter, rows, width int) (col, row int, ok bool) {
	if p.Y < v.top || p.Y >= v.top+rows || p.Y >= buf.LineCount() {
		return 0, 0, false
	}
	col = gutter + CellColumn(buf.Line(p.Y), p.X, v.tabWidth)
	if col >= width {
		return 0, 0, false
	}
	return col, p.Y - v.top, true
}

// runeAt returns the rune drawn under a secondary cursor.
func runeAt(buf buffer.Reader, p cursor.Position) rune {
	line := buf.Line(p.Y)
	if p.X >= line.Len() {
		return ' '
	}
	return displayRune(line.RuneAt(p.X))
}

func (v *View) drawLine(line buffer.Line, gutter, row, width int) {
	col := 0
	for x := 0; x < line.Len(); x++ {
		r := line.RuneAt(x)
		w := RuneWidth(r, col, v.tabWidth)
		if gutter+col+w > width {
			return
		}
		v.screen.SetCell(gutter+col, row, displayRune(r), v.styles.Text)
		for i := 1; i < w && r == '\t'; i++ {
			v.screen.SetCell(gutter+col+i, row, ' ', v.styles.Text)
		}
		col += w
	}
}

func (v *View) drawString(col, row, width int, s string, style tcell.Style) {
	for _, r := range s {
		w := RuneWidth(r, col, v.tabWidth)
		if col+w > width {
			return
		}
		v.screen.SetCell(col, row, displayRune(r), style)
		col += w
	}
}

func (v *View) drawStatus(row, width int, status string) {
	if row < 0 {
		return
	}
	for col := 0; col < width; col++ {
		v.screen.SetCell(col, row, ' ', v.styles.Status)
	}
	v.drawString(0, row, width, status, v.styles.Status)
}
