// Package mode defines the mode tag carried by every cursor.
//
// A Mode is an opaque, comparable value made of a Family and a Name.
// The family distinguishes navigation modes (Command) from text-entry
// modes (Primitive); the name identifies the concrete variant. The set
// of names belongs to the mode-dispatch layer: the motion engine copies
// modes by value and never inspects them.
//
//	m := mode.Normal          // command/normal
//	m = mode.NewPrimitive("insert")
//	m, err := mode.Parse("command/visual")
//
// CursorStyle maps a mode family to the cursor shape a front end should
// display.
package mode
