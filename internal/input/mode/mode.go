package mode

import (
	"fmt"
	"strings"
)

// Family groups modes that share input semantics.
type Family uint8

const (
	// Command is the navigation family (normal, visual, operator-pending...).
	Command Family = iota

	// Primitive is the text-entry family (insert, replace).
	Primitive
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case Command:
		return "command"
	case Primitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Mode is the tag carried by every cursor.
// It is a comparable value type; the set of names is owned by the
// mode-dispatch layer and is not interpreted by the motion engine.
type Mode struct {
	Family Family
	Name   string
}

// Standard mode names.
const (
	ModeNormal          = "normal"
	ModeInsert          = "insert"
	ModeVisual          = "visual"
	ModeOperatorPending = "operator-pending"
	ModeReplace         = "replace"
)

// Predefined modes.
var (
	Normal          = Mode{Family: Command, Name: ModeNormal}
	Visual          = Mode{Family: Command, Name: ModeVisual}
	OperatorPending = Mode{Family: Command, Name: ModeOperatorPending}
	Insert          = Mode{Family: Primitive, Name: ModeInsert}
	Replace         = Mode{Family: Primitive, Name: ModeReplace}
)

// NewCommand returns a command-family mode with the given name.
func NewCommand(name string) Mode {
	return Mode{Family: Command, Name: name}
}

// NewPrimitive returns a primitive-family mode with the given name.
func NewPrimitive(name string) Mode {
	return Mode{Family: Primitive, Name: name}
}

// IsCommand reports whether m belongs to the command family.
func (m Mode) IsCommand() bool {
	return m.Family == Command
}

// IsPrimitive reports whether m belongs to the primitive family.
func (m Mode) IsPrimitive() bool {
	return m.Family == Primitive
}

// String returns "family/name".
func (m Mode) String() string {
	return fmt.Sprintf("%s/%s", m.Family, m.Name)
}

// Parse parses a mode from either "family/name" or a bare standard name.
func Parse(s string) (Mode, error) {
	switch s {
	case ModeNormal:
		return Normal, nil
	case ModeVisual:
		return Visual, nil
	case ModeOperatorPending:
		return OperatorPending, nil
	case ModeInsert:
		return Insert, nil
	case ModeReplace:
		return Replace, nil
	}

	if family, name, ok := strings.Cut(s, "/"); ok && name != "" {
		switch family {
		case "command":
			return NewCommand(name), nil
		case "primitive":
			return NewPrimitive(name), nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// ParseCursorStyle parses a cursor style name.
func ParseCursorStyle(s string) (CursorStyle, error) {
	switch s {
	case "block":
		return CursorBlock, nil
	case "bar":
		return CursorBar, nil
	case "underline":
		return CursorUnderline, nil
	case "hidden":
		return CursorHidden, nil
	default:
		return CursorBlock, fmt.Errorf("%w: %q", ErrUnknownCursorStyle, s)
	}
}

// DefaultCursorStyle returns the conventional style for a family.
func DefaultCursorStyle(f Family) CursorStyle {
	if f == Primitive {
		return CursorBar
	}
	return CursorBlock
}
