package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/dispatcher"
	"github.com/dshills/caret/internal/input/mode"
)

// maxCount caps the numeric prefix.
const maxCount = 99999

// KeyResult is what a key press resolved to.
type KeyResult struct {
	Action dispatcher.Action
	// Dispatch is set when Action should be dispatched.
	Dispatch bool
	// Quit is set when the user asked to exit.
	Quit bool
}

// KeyHandler turns key presses into actions, accumulating a count
// prefix and the target of f and F.
type KeyHandler struct {
	count   int
	pending string // action waiting for a character
}

// NewKeyHandler creates a key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Pending returns the count and operator typed so far, for display.
func (h *KeyHandler) Pending() string {
	s := ""
	if h.count > 0 {
		s = strconv.Itoa(h.count)
	}
	switch h.pending {
	case dispatcher.ActionFindNext:
		s += "f"
	case dispatcher.ActionFindPrevious:
		s += "F"
	}
	return s
}

// Reset drops any partial count or operator.
func (h *KeyHandler) Reset() {
	h.count = 0
	h.pending = ""
}

// Handle resolves ev in the context of the current cursor's mode.
func (h *KeyHandler) Handle(ev *tcell.EventKey, current mode.Mode) KeyResult {
	if ev.Key() == tcell.KeyCtrlC {
		return KeyResult{Quit: true}
	}
	if ev.Key() == tcell.KeyEscape {
		h.Reset()
		return h.action(dispatcher.Action{Name: dispatcher.ActionSetMode, Mode: mode.Normal})
	}

	if h.pending != "" {
		name := h.pending
		h.pending = ""
		if ev.Key() != tcell.KeyRune {
			h.Reset()
			return KeyResult{}
		}
		return h.action(dispatcher.Action{Name: name, Char: ev.Rune()})
	}

	if a, ok := arrowAction(ev.Key()); ok {
		return h.action(a)
	}

	// Text-entry modes only respond to arrows and Escape.
	if current.IsPrimitive() {
		return KeyResult{}
	}

	switch ev.Key() {
	case tcell.KeyTab:
		return h.action(dispatcher.Action{Name: dispatcher.ActionNextCursor})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return h.action(dispatcher.Action{Name: dispatcher.ActionPrevious})
	case tcell.KeyRune:
	default:
		h.Reset()
		return KeyResult{}
	}

	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9', r == '0' && h.count > 0:
		h.count = min(h.count*10+int(r-'0'), maxCount)
		return KeyResult{}
	case r == 'f':
		h.pending = dispatcher.ActionFindNext
		return KeyResult{}
	case r == 'F':
		h.pending = dispatcher.ActionFindPrevious
		return KeyResult{}
	case r == 'q':
		return KeyResult{Quit: true}
	}

	if a, ok := runeActions[r]; ok {
		return h.action(a)
	}
	h.Reset()
	return KeyResult{}
}

// action completes a, consuming the count prefix.
func (h *KeyHandler) action(a dispatcher.Action) KeyResult {
	a.Count = h.count
	h.count = 0
	return KeyResult{Action: a, Dispatch: true}
}

var runeActions = map[rune]dispatcher.Action{
	'h': {Name: dispatcher.ActionMoveLeft},
	'l': {Name: dispatcher.ActionMoveRight},
	'k': {Name: dispatcher.ActionMoveUp},
	'j': {Name: dispatcher.ActionMoveDown},
	'H': {Name: dispatcher.ActionMoveLeft, AllCursors: true},
	'L': {Name: dispatcher.ActionMoveRight, AllCursors: true},
	'K': {Name: dispatcher.ActionMoveUp, AllCursors: true},
	'J': {Name: dispatcher.ActionMoveDown, AllCursors: true},
	' ': {Name: dispatcher.ActionNext},
	'+': {Name: dispatcher.ActionAddCursor},
	'-': {Name: dispatcher.ActionRemoveCursor},
	'i': {Name: dispatcher.ActionSetMode, Mode: mode.Insert},
	'R': {Name: dispatcher.ActionSetMode, Mode: mode.Replace},
	'v': {Name: dispatcher.ActionSetMode, Mode: mode.Visual},
}

func arrowAction(k tcell.Key) (dispatcher.Action, bool) {
	switch k {
	case tcell.KeyLeft:
		return dispatcher.Action{Name: dispatcher.ActionMoveLeft}, true
	case tcell.KeyRight:
		return dispatcher.Action{Name: dispatcher.ActionMoveRight}, true
	case tcell.KeyUp:
		return dispatcher.Action{Name: dispatcher.ActionMoveUp}, true
	case tcell.KeyDown:
		return dispatcher.Action{Name: dispatcher.ActionMoveDown}, true
	}
	return dispatcher.Action{}, false
}
