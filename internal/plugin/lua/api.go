package lua

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/caret/internal/dispatcher"
	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/motion"
	"github.com/dshills/caret/internal/input/mode"
	"github.com/dshills/caret/internal/logging"
)

// GlobalName is the Lua global holding the editor API.
const GlobalName = "caret"

// API exposes an editor and its dispatcher to Lua as the caret table.
//
// Coordinates are 0-based columns and lines, matching the engine.
// Cursor indices are 1-based, matching Lua tables.
type API struct {
	editor *engine.Editor
	disp   *dispatcher.Dispatcher
	logger *logging.Logger
}

// NewAPI creates the API for d and its editor.
func NewAPI(d *dispatcher.Dispatcher, logger *logging.Logger) *API {
	if logger == nil {
		logger = logging.Discard()
	}
	return &API{
		editor: d.Editor(),
		disp:   d,
		logger: logger.WithComponent("script"),
	}
}

// Register installs the caret table into L.
func (a *API) Register(L *lua.LState) {
	root := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"dispatch":   a.dispatch,
		"line":       a.line,
		"line_count": a.lineCount,
		"log":        a.log,
	})
	L.SetField(root, "motion", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"after":             a.after,
		"before":            a.before,
		"next":              a.optional(func(m *motion.Mover, n int) (cursor.Position, bool) { return m.Next(n) }),
		"previous":          a.optional(func(m *motion.Mover, n int) (cursor.Position, bool) { return m.Previous(n) }),
		"right":             a.bounded(func(m *motion.Mover, n int) cursor.Position { return m.Right(n) }),
		"left":              a.bounded(func(m *motion.Mover, n int) cursor.Position { return m.Left(n) }),
		"up":                a.bounded(func(m *motion.Mover, n int) cursor.Position { return m.Up(n) }),
		"down":              a.bounded(func(m *motion.Mover, n int) cursor.Position { return m.Down(n) }),
		"right_unbounded":   a.unbounded(func(m *motion.Mover, n int) cursor.SignedPosition { return m.RightUnbounded(n) }),
		"left_unbounded":    a.unbounded(func(m *motion.Mover, n int) cursor.SignedPosition { return m.LeftUnbounded(n) }),
		"up_unbounded":      a.unbounded(func(m *motion.Mover, n int) cursor.SignedPosition { return m.UpUnbounded(n) }),
		"down_unbounded":    a.unbounded(func(m *motion.Mover, n int) cursor.SignedPosition { return m.DownUnbounded(n) }),
		"find_next":         a.search(func(m *motion.Mover, c rune, n int) (int, bool) { return m.NextOccurrence(c, n) }),
		"find_previous":     a.search(func(m *motion.Mover, c rune, n int) (int, bool) { return m.PreviousOccurrence(c, n) }),
		"clamp":             a.clamp,
	}))
	L.SetField(root, "cursor", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"get":      a.cursorGet,
		"all":      a.cursorAll,
		"move_to":  a.cursorMoveTo,
		"advance":  a.cursorAdvance,
		"count":    a.cursorCount,
		"index":    a.cursorIndex,
		"add":      a.cursorAdd,
		"remove":   a.cursorRemove,
		"set_mode": a.cursorSetMode,
	}))
	L.SetGlobal(GlobalName, root)
}

func pushPosition(L *lua.LState, p cursor.Position) int {
	L.Push(lua.LNumber(p.X))
	L.Push(lua.LNumber(p.Y))
	return 2
}

func checkPosition(L *lua.LState, xArg, yArg int) cursor.Position {
	x, y := L.CheckInt(xArg), L.CheckInt(yArg)
	if x < 0 {
		L.ArgError(xArg, "column must be non-negative")
	}
	if y < 0 {
		L.ArgError(yArg, "line must be non-negative")
	}
	return cursor.Pos(x, y)
}

func checkRune(L *lua.LState, arg int) rune {
	s := L.CheckString(arg)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		L.ArgError(arg, "expected a single character")
	}
	return r
}

// checkBufferPosition is checkPosition for positions that must name an
// existing line.
func (a *API) checkBufferPosition(L *lua.LState, xArg, yArg int) cursor.Position {
	p := checkPosition(L, xArg, yArg)
	if p.Y >= a.editor.LineCount() {
		L.ArgError(yArg, "line out of range")
	}
	return p
}

// after(n, x, y) -> x, y | nil
func (a *API) after(L *lua.LState) int {
	n := L.CheckInt(1)
	from := a.checkBufferPosition(L, 2, 3)
	var p cursor.Position
	var ok bool
	a.editor.View(func(m *motion.Mover) { p, ok = m.After(n, from) })
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	return pushPosition(L, p)
}

// before(n, x, y) -> x, y | nil
func (a *API) before(L *lua.LState) int {
	n := L.CheckInt(1)
	from := a.checkBufferPosition(L, 2, 3)
	var p cursor.Position
	var ok bool
	a.editor.View(func(m *motion.Mover) { p, ok = m.Before(n, from) })
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	return pushPosition(L, p)
}

func (a *API) optional(fn func(m *motion.Mover, n int) (cursor.Position, bool)) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		var p cursor.Position
		var ok bool
		a.editor.View(func(m *motion.Mover) { p, ok = fn(m, n) })
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		return pushPosition(L, p)
	}
}

func (a *API) bounded(fn func(m *motion.Mover, n int) cursor.Position) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		var p cursor.Position
		a.editor.View(func(m *motion.Mover) { p = fn(m, n) })
		return pushPosition(L, p)
	}
}

func (a *API) unbounded(fn func(m *motion.Mover, n int) cursor.SignedPosition) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		var p cursor.SignedPosition
		a.editor.View(func(m *motion.Mover) { p = fn(m, n) })
		L.Push(lua.LNumber(p.X))
		L.Push(lua.LNumber(p.Y))
		return 2
	}
}

// find_next(c[, n]) -> column | nil
func (a *API) search(fn func(m *motion.Mover, c rune, n int) (int, bool)) lua.LGFunction {
	return func(L *lua.LState) int {
		c := checkRune(L, 1)
		n := L.OptInt(2, 1)
		var x int
		var ok bool
		a.editor.View(func(m *motion.Mover) { x, ok = fn(m, c, n) })
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(x))
		return 1
	}
}

// clamp(x, y) -> x, y
func (a *API) clamp(L *lua.LState) int {
	sp := cursor.SignedPosition{X: L.CheckInt(1), Y: L.CheckInt(2)}
	var p cursor.Position
	a.editor.View(func(m *motion.Mover) { p = m.Clamp(sp) })
	return pushPosition(L, p)
}

// get() -> x, y, mode
func (a *API) cursorGet(L *lua.LState) int {
	c := a.editor.Current()
	pushPosition(L, c.Pos())
	L.Push(lua.LString(c.Mode.String()))
	return 3
}

// all() -> {{x=, y=, mode=, current=}, ...}
func (a *API) cursorAll(L *lua.LState) int {
	cursors, current := a.editor.Cursors()
	tbl := L.CreateTable(len(cursors), 0)
	for i, c := range cursors {
		entry := L.NewTable()
		L.SetField(entry, "x", lua.LNumber(c.X))
		L.SetField(entry, "y", lua.LNumber(c.Y))
		L.SetField(entry, "mode", lua.LString(c.Mode.String()))
		L.SetField(entry, "current", lua.LBool(i == current))
		tbl.RawSetInt(i+1, entry)
	}
	L.Push(tbl)
	return 1
}

// move_to(x, y)
func (a *API) cursorMoveTo(L *lua.LState) int {
	a.editor.Goto(checkPosition(L, 1, 2))
	return 0
}

// advance() -> index
func (a *API) cursorAdvance(L *lua.LState) int {
	L.Push(lua.LNumber(a.editor.Advance() + 1))
	return 1
}

// count() -> n
func (a *API) cursorCount(L *lua.LState) int {
	cursors, _ := a.editor.Cursors()
	L.Push(lua.LNumber(len(cursors)))
	return 1
}

// index() -> current index
func (a *API) cursorIndex(L *lua.LState) int {
	_, current := a.editor.Cursors()
	L.Push(lua.LNumber(current + 1))
	return 1
}

// add(x, y[, mode]) -> count
func (a *API) cursorAdd(L *lua.LState) int {
	c := cursor.NewAt(checkPosition(L, 1, 2))
	if L.GetTop() >= 3 {
		c.Mode = checkMode(L, 3)
	}
	if err := a.editor.AddCursor(c); err != nil {
		L.RaiseError("add: %v", err)
		return 0
	}
	return a.cursorCount(L)
}

// remove(index)
func (a *API) cursorRemove(L *lua.LState) int {
	i := L.CheckInt(1)
	if err := a.editor.RemoveCursor(i - 1); err != nil {
		L.RaiseError("remove: %v", err)
	}
	return 0
}

// set_mode(name)
func (a *API) cursorSetMode(L *lua.LState) int {
	a.editor.SetMode(checkMode(L, 1))
	return 0
}

func checkMode(L *lua.LState, arg int) mode.Mode {
	m, err := mode.Parse(L.CheckString(arg))
	if err != nil {
		L.ArgError(arg, err.Error())
	}
	return m
}

// dispatch(name[, count[, char]]) -> moved
func (a *API) dispatch(L *lua.LState) int {
	action := dispatcher.Action{
		Name:  L.CheckString(1),
		Count: L.OptInt(2, 1),
	}
	if L.GetTop() >= 3 {
		action.Char = checkRune(L, 3)
	}

	res := a.disp.Dispatch(action)
	if res.IsError() {
		L.RaiseError("%s: %v", action.Name, res.Error)
		return 0
	}
	L.Push(lua.LBool(res.IsOK()))
	return 1
}

// line(y) -> text | nil
func (a *API) line(L *lua.LState) int {
	text, err := a.editor.LineText(L.CheckInt(1))
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

// line_count() -> n
func (a *API) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(a.editor.LineCount()))
	return 1
}

// log(msg)
func (a *API) log(L *lua.LState) int {
	a.logger.Info("%s", L.CheckString(1))
	return 0
}
