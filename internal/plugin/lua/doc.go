// Package lua runs motion scripts written in Lua.
//
// Scripts see a global caret table:
//
//	caret.motion.after(n, x, y)      -- x, y or nil
//	caret.motion.next(n)             -- from the current cursor
//	caret.motion.find_next("c", n)   -- column or nil
//	caret.cursor.get()               -- x, y, mode
//	caret.cursor.move_to(x, y)
//	caret.dispatch("cursor.moveDown", 2)
//
// Columns and lines are 0-based. Cursor indices are 1-based.
//
// # State
//
// The State type manages a sandboxed gopher-lua runtime. Only the base,
// package, table, string and math libraries are opened; dofile, load and
// loadfile are removed, and require only searches the configured paths.
//
//	r, err := lua.NewRunner(d, logger, lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	err = r.RunFile(ctx, "motions.lua")
//
// Execution is bounded by the context passed in and the state's
// execution timeout, whichever expires first.
package lua
