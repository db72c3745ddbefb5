package dispatcher

import (
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/input/mode"
)

// Action names for cursor movements.
const (
	ActionMoveLeft     = "cursor.moveLeft"
	ActionMoveRight    = "cursor.moveRight"
	ActionMoveUp       = "cursor.moveUp"
	ActionMoveDown     = "cursor.moveDown"
	ActionNext         = "cursor.next"
	ActionPrevious     = "cursor.previous"
	ActionFindNext     = "cursor.findNext"
	ActionFindPrevious = "cursor.findPrevious"
	ActionGoto         = "cursor.goto"
)

// Action names for registry operations.
const (
	ActionNextCursor   = "cursor.nextCursor"
	ActionAddCursor    = "cursor.addCursor"
	ActionRemoveCursor = "cursor.removeCursor"
	ActionSetMode      = "cursor.setMode"
)

// Action is a resolved motion request from the mode layer.
type Action struct {
	// Name identifies the handler, e.g. "cursor.moveLeft".
	Name string

	// Count is the numeric prefix; values below 1 mean 1.
	Count int

	// Char is the search target for find actions.
	Char rune

	// Target is the destination for ActionGoto.
	Target cursor.Position

	// Mode is the new tag for ActionSetMode.
	Mode mode.Mode

	// AllCursors applies a motion to every cursor instead of the current one.
	AllCursors bool
}

// GetCount returns the count, defaulting to 1.
func (a Action) GetCount() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}

// motionActions are the actions that may be applied to all cursors.
var motionActions = map[string]bool{
	ActionMoveLeft:     true,
	ActionMoveRight:    true,
	ActionMoveUp:       true,
	ActionMoveDown:     true,
	ActionNext:         true,
	ActionPrevious:     true,
	ActionFindNext:     true,
	ActionFindPrevious: true,
	ActionGoto:         true,
}

// IsMotion reports whether name is a built-in motion action.
func IsMotion(name string) bool {
	return motionActions[name]
}
