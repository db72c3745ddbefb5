// Package dispatcher routes named cursor actions to handlers.
//
// An Action names a motion ("cursor.moveLeft", "cursor.findNext", ...)
// along with its count and arguments. The Dispatcher runs the matching
// handler under the editor's exclusive lock and commits the computed
// position to the current cursor. Motions that find no target produce a
// no-op result and leave the cursor where it was.
//
// Basic usage:
//
//	ed := engine.New(engine.WithContent("abc\nde"))
//	d := dispatcher.NewWithDefaults(ed)
//	res := d.Dispatch(dispatcher.Action{Name: dispatcher.ActionMoveRight, Count: 2})
//	// res.Cursor == (2, 0)
//
// Custom handlers may be registered with RegisterHandlerFunc. Handler
// panics are recovered and reported as errors unless disabled in Config.
package dispatcher
