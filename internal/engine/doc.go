// Package engine is the host that owns a buffer together with the cursor
// registry moving over it.
//
// # Ownership
//
// The motion engine never owns state. Editor holds both the buffer and the
// registry behind one read-write lock and lends them out:
//
//   - View lends a Mover under the shared lock, for queries.
//   - Update lends a Mover and the registry under the exclusive lock, for
//     Goto, Advance and mode changes.
//
// Any number of queries may run at once; a cursor update or buffer
// replacement runs alone.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("abc\nde"))
//
//	// Query without moving.
//	var next engine.Position
//	var ok bool
//	e.View(func(m *engine.Mover) {
//	    next, ok = m.Next(4)
//	})
//
//	// Commit.
//	if ok {
//	    e.Goto(next) // (1,1)
//	}
//
// # Multi-Cursor Support
//
//	e.AddCursor(cursor.NewAt(cursor.Pos(2, 0)))
//	e.Advance() // second cursor is now current
package engine
