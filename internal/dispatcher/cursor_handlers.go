package dispatcher

import (
	"github.com/dshills/caret/internal/engine/cursor"
)

func registerCursorHandlers(d *Dispatcher) {
	d.handlers[ActionMoveLeft] = bounded(func(ctx *Context, n int) cursor.Position { return ctx.Mover.Left(n) })
	d.handlers[ActionMoveRight] = bounded(func(ctx *Context, n int) cursor.Position { return ctx.Mover.Right(n) })
	d.handlers[ActionMoveUp] = bounded(func(ctx *Context, n int) cursor.Position { return ctx.Mover.Up(n) })
	d.handlers[ActionMoveDown] = bounded(func(ctx *Context, n int) cursor.Position { return ctx.Mover.Down(n) })
	d.handlers[ActionNext] = optional(func(ctx *Context, a Action) (cursor.Position, bool) {
		return ctx.Mover.Next(a.GetCount())
	})
	d.handlers[ActionPrevious] = optional(func(ctx *Context, a Action) (cursor.Position, bool) {
		return ctx.Mover.Previous(a.GetCount())
	})
	d.handlers[ActionFindNext] = find(func(ctx *Context, a Action) (int, bool) {
		return ctx.Mover.NextOccurrence(a.Char, a.GetCount())
	})
	d.handlers[ActionFindPrevious] = find(func(ctx *Context, a Action) (int, bool) {
		return ctx.Mover.PreviousOccurrence(a.Char, a.GetCount())
	})
	d.handlers[ActionGoto] = handleGoto
	d.handlers[ActionNextCursor] = handleNextCursor
	d.handlers[ActionAddCursor] = handleAddCursor
	d.handlers[ActionRemoveCursor] = handleRemoveCursor
	d.handlers[ActionSetMode] = handleSetMode
}

// commit moves the current cursor to p. Landing where it started is a no-op.
func commit(ctx *Context, p cursor.Position) Result {
	if p == ctx.Mover.Pos() {
		return NoOp()
	}
	ctx.Mover.Goto(p)
	return Success()
}

func bounded(motion func(ctx *Context, n int) cursor.Position) HandlerFunc {
	return func(ctx *Context, a Action) Result {
		return commit(ctx, motion(ctx, a.GetCount()))
	}
}

func optional(motion func(ctx *Context, a Action) (cursor.Position, bool)) HandlerFunc {
	return func(ctx *Context, a Action) Result {
		p, ok := motion(ctx, a)
		if !ok {
			return NoOpWithMessage("no such position")
		}
		return commit(ctx, p)
	}
}

func find(search func(ctx *Context, a Action) (int, bool)) HandlerFunc {
	return func(ctx *Context, a Action) Result {
		if a.Char == 0 {
			return Error(ErrMissingChar)
		}
		x, ok := search(ctx, a)
		if !ok {
			return NoOpWithMessage("character not found: " + string(a.Char))
		}
		return commit(ctx, cursor.Pos(x, ctx.Mover.Pos().Y))
	}
}

func handleGoto(ctx *Context, a Action) Result {
	return commit(ctx, a.Target)
}

func handleNextCursor(ctx *Context, _ Action) Result {
	if !ctx.Registry.IsMulti() {
		return NoOp()
	}
	ctx.Registry.Advance()
	return Success()
}

func handleAddCursor(ctx *Context, _ Action) Result {
	if ctx.Registry.Len() >= ctx.MaxCursors {
		return Error(cursor.ErrTooManyCursors)
	}
	if err := ctx.Registry.Add(ctx.Registry.Current().Clone()); err != nil {
		return Error(err)
	}
	return Success()
}

func handleRemoveCursor(ctx *Context, _ Action) Result {
	if err := ctx.Registry.Remove(ctx.Registry.Index()); err != nil {
		return Error(err)
	}
	return Success()
}

func handleSetMode(ctx *Context, a Action) Result {
	if ctx.Registry.Current().Mode == a.Mode {
		return NoOp()
	}
	ctx.Registry.SetMode(a.Mode)
	return Success()
}
