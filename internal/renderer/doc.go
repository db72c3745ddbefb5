// Package renderer draws a buffer and its cursors onto a terminal.
//
// A View renders the visible lines of a buffer.Reader onto a Screen,
// scrolling vertically to keep the current cursor in view. The current
// cursor is shown as the terminal cursor, styled by its mode family;
// the other cursors are drawn in reverse video.
//
// Rune columns are translated to screen cells with go-runewidth, so
// wide characters take two cells and tabs expand to the next stop.
//
// Usage:
//
//	term, _ := renderer.NewTerminal()
//	_ = term.Init()
//	defer term.Fini()
//	v := renderer.NewView(term, renderer.WithLineNumbers(true))
//	ed.View(func(m *motion.Mover) {
//	    v.Render(m.Buffer(), m.Registry().Cursors(), m.Registry().Index(), "")
//	})
package renderer
