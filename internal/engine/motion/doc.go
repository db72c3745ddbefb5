// Package motion computes cursor coordinates for motion requests over a
// read-only buffer.
//
// A Mover binds a buffer.Reader to a cursor.Registry. Every method except
// Goto is a query: it reads the current cursor and the buffer and returns
// a coordinate without changing either. The caller decides whether to
// commit the result with Goto.
//
// Motion families:
//
//   - Flat offset: After, Before, Next, Previous treat the buffer as its
//     lines concatenated with no separator between them, so crossing a
//     line boundary consumes no character.
//   - Bounded directional: Right, Left, Up, Down always return a usable
//     position. Up and Down keep the cursor's stored column (Down bounds
//     it against the destination line; Up does not).
//   - Unbounded directional: RightUnbounded and friends return plain
//     signed arithmetic for "would this run off the buffer" checks.
//   - Character search: NextOccurrence and PreviousOccurrence find the
//     n-th match of a character on the current line only.
//
// Results that may not exist are returned as (value, ok) pairs. An
// out-of-range line index or registry selector is a broken invariant and
// panics.
package motion
