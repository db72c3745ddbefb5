// Package cursor provides the position and cursor model.
//
// The cursor package handles:
//
//   - Position: a bounded (column, line) coordinate
//   - SignedPosition: the unclamped result of an unbounded motion
//   - Cursor: a position plus a mode tag and a stable ID
//   - Registry: the ordered set of active cursors with a current selector
//
// Registry Model:
//
// A Registry is never empty and its selector always indexes a cursor.
// Advance moves the selector to the next cursor and wraps, which drives
// cyclic multi-cursor editing:
//
//	reg := cursor.NewRegistry(cursor.New(), cursor.NewAt(cursor.Pos(4, 2)))
//	reg.Current().Pos() // (0,0)
//	reg.Advance()
//	reg.Current().Pos() // (4,2)
//	reg.Advance()       // wraps to the first cursor
//
// Coordinates are not bounded against a buffer here; that is done by the
// motion engine at the point of use.
//
// Thread Safety:
//
// Cursor and Position are value types. Registry is not thread-safe and
// should be owned by a single editor that serializes access.
package cursor
