package cursor

import (
	"fmt"

	"github.com/dshills/caret/internal/input/mode"
)

// MaxCursors is the largest number of cursors a registry holds.
// The selector is a uint8.
const MaxCursors = 256

// Registry is an ordered, non-empty set of cursors with a selector
// pointing at the current one. The selector is always a valid index.
//
// Registry does not bound cursor coordinates against any buffer.
// It is not thread-safe; the owning editor serializes access.
type Registry struct {
	cursors  []Cursor
	selected uint8
}

// NewRegistry creates a registry holding the given cursors, selecting the
// first. With no cursors it holds a single New() cursor. Cursors past
// MaxCursors are dropped.
func NewRegistry(cursors ...Cursor) *Registry {
	if len(cursors) == 0 {
		return &Registry{cursors: []Cursor{New()}}
	}
	if len(cursors) > MaxCursors {
		cursors = cursors[:MaxCursors]
	}
	r := &Registry{cursors: make([]Cursor, len(cursors))}
	copy(r.cursors, cursors)
	return r
}

// Current returns the current cursor.
func (r *Registry) Current() Cursor {
	return *r.CurrentMut()
}

// CurrentMut returns a pointer to the current cursor for in-place updates.
// The pointer is invalidated by Add and Remove.
func (r *Registry) CurrentMut() *Cursor {
	i := int(r.selected)
	if i >= len(r.cursors) {
		panic(fmt.Sprintf("cursor: selector %d out of range [0, %d)", i, len(r.cursors)))
	}
	return &r.cursors[i]
}

// Advance selects the next cursor, wrapping to the first.
func (r *Registry) Advance() {
	r.selected = uint8((int(r.selected) + 1) % len(r.cursors))
}

// Index returns the selector.
func (r *Registry) Index() int {
	return int(r.selected)
}

// Len returns the number of cursors.
func (r *Registry) Len() int {
	return len(r.cursors)
}

// IsMulti returns true if there are multiple cursors.
func (r *Registry) IsMulti() bool {
	return len(r.cursors) > 1
}

// Get returns the cursor at index i.
func (r *Registry) Get(i int) (Cursor, bool) {
	if i < 0 || i >= len(r.cursors) {
		return Cursor{}, false
	}
	return r.cursors[i], true
}

// Cursors returns a copy of all cursors in order.
// The returned slice is safe to modify without affecting the registry.
func (r *Registry) Cursors() []Cursor {
	result := make([]Cursor, len(r.cursors))
	copy(result, r.cursors)
	return result
}

// Select makes the cursor at index i current.
func (r *Registry) Select(i int) error {
	if i < 0 || i >= len(r.cursors) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	r.selected = uint8(i)
	return nil
}

// Add appends a cursor. The selector is unchanged.
func (r *Registry) Add(c Cursor) error {
	if len(r.cursors) >= MaxCursors {
		return ErrTooManyCursors
	}
	r.cursors = append(r.cursors, c)
	return nil
}

// Remove deletes the cursor at index i. The selector keeps pointing at
// the same cursor when possible; if the current cursor is removed the
// next one becomes current, wrapping to the first.
func (r *Registry) Remove(i int) error {
	if i < 0 || i >= len(r.cursors) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if len(r.cursors) == 1 {
		return ErrLastCursor
	}

	r.cursors = append(r.cursors[:i], r.cursors[i+1:]...)

	sel := int(r.selected)
	if i < sel {
		sel--
	}
	if sel >= len(r.cursors) {
		sel = 0
	}
	r.selected = uint8(sel)
	return nil
}

// Goto overwrites the current cursor's coordinates without bounds checks.
func (r *Registry) Goto(p Position) {
	c := r.CurrentMut()
	c.X, c.Y = p.X, p.Y
}

// SetMode replaces the current cursor's mode tag.
func (r *Registry) SetMode(m mode.Mode) {
	r.CurrentMut().Mode = m
}

// ForEach calls f for each cursor with its index.
func (r *Registry) ForEach(f func(index int, c Cursor)) {
	for i, c := range r.cursors {
		f(i, c)
	}
}
