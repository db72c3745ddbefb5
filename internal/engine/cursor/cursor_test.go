package cursor

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/caret/internal/input/mode"
)

// Position Tests

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Pos(0, 0), Pos(0, 0), 0},
		{Pos(1, 0), Pos(0, 1), -1},
		{Pos(0, 1), Pos(5, 0), 1},
		{Pos(2, 3), Pos(4, 3), -1},
		{Pos(4, 3), Pos(2, 3), 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSignedPosition(t *testing.T) {
	tests := []struct {
		p      SignedPosition
		want   Position
		wantOK bool
	}{
		{SignedPosition{3, 4}, Pos(3, 4), true},
		{SignedPosition{-1, 4}, Pos(0, 4), false},
		{SignedPosition{2, -3}, Pos(2, 0), false},
	}

	for _, tt := range tests {
		got, ok := tt.p.Position()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%v.Position() = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.wantOK)
		}
	}

	if Pos(1, 2).Signed() != (SignedPosition{1, 2}) {
		t.Error("Signed() should preserve coordinates")
	}
}

// Cursor Tests

func TestNewCursor(t *testing.T) {
	c := New()
	if c.X != 0 || c.Y != 0 {
		t.Errorf("New() at (%d,%d), want (0,0)", c.X, c.Y)
	}
	if c.Mode != mode.Normal {
		t.Errorf("New().Mode = %v, want %v", c.Mode, mode.Normal)
	}
	if c.ID == uuid.Nil {
		t.Error("New() should assign an ID")
	}
	if New().ID == c.ID {
		t.Error("cursor IDs should be unique")
	}
}

func TestCursorMoveTo(t *testing.T) {
	c := New()
	c.Mode = mode.Insert
	moved := c.MoveTo(Pos(3, 1))

	if c.Pos() != Pos(0, 0) {
		t.Error("original cursor should be unchanged")
	}
	if moved.Pos() != Pos(3, 1) {
		t.Errorf("moved.Pos() = %v", moved.Pos())
	}
	if moved.ID != c.ID || moved.Mode != c.Mode {
		t.Error("MoveTo should keep ID and mode")
	}
}

func TestCursorClone(t *testing.T) {
	c := NewAt(Pos(2, 2))
	clone := c.Clone()
	if clone.ID == c.ID {
		t.Error("Clone should assign a new ID")
	}
	if clone.Pos() != c.Pos() || clone.Mode != c.Mode {
		t.Error("Clone should keep position and mode")
	}
}
