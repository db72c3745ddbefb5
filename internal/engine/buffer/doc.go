// Package buffer provides the read-only text capability consumed by the
// motion engine, and a thread-safe line store that implements it.
//
// The motion engine depends only on Reader and Line:
//
//	type Reader interface {
//	    LineCount() int
//	    Line(index int) Line
//	}
//
// Columns count characters (runes). Lines carry no terminator, so the
// engine can treat the buffer as lines concatenated without separators.
//
// Buffer is the reference implementation:
//
//	buf := buffer.NewBufferFromString("abc\nde")
//	buf.LineCount()      // 2
//	buf.Line(1).Len()    // 2
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Content replacement swaps whole
// line slices, so a Line obtained earlier stays valid and unchanged.
// Snapshot returns an immutable Reader for detached readers such as a
// renderer.
package buffer
