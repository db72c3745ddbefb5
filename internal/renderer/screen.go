package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/input/mode"
)

// Screen is the drawing surface a View renders onto.
type Screen interface {
	Size() (width, height int)
	SetCell(x, y int, r rune, style tcell.Style)
	Clear()
	Show()
	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style mode.CursorStyle)
}

// Terminal implements Screen using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// SetCell draws r at (x, y).
func (t *Terminal) SetCell(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(x, y, r, nil, style)
}

// Clear clears the back buffer.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes pending changes to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// ShowCursor places the terminal cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.HideCursor()
}

// SetCursorStyle sets the terminal cursor shape.
func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case mode.CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case mode.CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case mode.CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case mode.CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

// PollEvent waits for the next terminal event. It returns nil after Fini.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues an event, e.g. to wake the event loop.
func (t *Terminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Content returns the rune and style drawn at (x, y).
func (t *Terminal) Content(x, y int) (rune, tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return mainc, style
}
