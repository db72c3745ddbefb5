package engine

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/input/mode"
)

func TestNew(t *testing.T) {
	e := New()
	if e.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", e.LineCount())
	}
	c := e.Current()
	if c.Pos() != cursor.Pos(0, 0) || c.Mode != mode.Normal {
		t.Errorf("Current() = %v", c)
	}
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("abc\nde"))
	if e.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", e.LineCount())
	}
	if text, err := e.LineText(1); err != nil || text != "de" {
		t.Errorf("LineText(1) = %q, %v", text, err)
	}
	if _, err := e.LineText(5); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("LineText(5) error = %v, want ErrLineOutOfRange", err)
	}
	if e.Text() != "abc\nde" {
		t.Errorf("Text() = %q", e.Text())
	}
}

func TestNewFromReader(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("one\r\ntwo\r\n"))
	if err != nil {
		t.Fatalf("NewFromReader: %v", err)
	}
	if e.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", e.LineCount())
	}
	if e.Text() != "one\r\ntwo\r\n" {
		t.Errorf("Text() = %q, want detected CRLF endings", e.Text())
	}
}

func TestViewAndGoto(t *testing.T) {
	e := New(WithContent("abc\nde"))

	var next Position
	var ok bool
	e.View(func(m *Mover) {
		next, ok = m.Next(4)
	})
	if !ok || next != cursor.Pos(1, 1) {
		t.Fatalf("Next(4) = %v, %v", next, ok)
	}
	if e.Current().Pos() != cursor.Pos(0, 0) {
		t.Error("View must not move the cursor")
	}

	e.Goto(next)
	if e.Current().Pos() != cursor.Pos(1, 1) {
		t.Errorf("Current() = %v after Goto", e.Current().Pos())
	}
}

func TestUpdate(t *testing.T) {
	e := New(WithContent("abcdef"))
	err := e.Update(func(m *Mover, reg *cursor.Registry) error {
		m.Goto(m.Right(4))
		reg.SetMode(mode.Insert)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	c := e.Current()
	if c.Pos() != cursor.Pos(4, 0) || c.Mode != mode.Insert {
		t.Errorf("Current() = %v", c)
	}

	sentinel := errors.New("stop")
	if err := e.Update(func(*Mover, *cursor.Registry) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("Update error = %v, want sentinel", err)
	}
}

func TestMultiCursor(t *testing.T) {
	e := New(
		WithContent("abc\nde"),
		WithCursors(cursor.New(), cursor.NewAt(cursor.Pos(1, 1))),
	)

	if idx := e.Advance(); idx != 1 {
		t.Errorf("Advance() = %d, want 1", idx)
	}
	if e.Current().Pos() != cursor.Pos(1, 1) {
		t.Errorf("Current() = %v", e.Current().Pos())
	}

	if err := e.AddCursor(cursor.NewAt(cursor.Pos(2, 0))); err != nil {
		t.Fatal(err)
	}
	cs, idx := e.Cursors()
	if len(cs) != 3 || idx != 1 {
		t.Errorf("Cursors() = %d cursors, index %d", len(cs), idx)
	}

	if err := e.RemoveCursor(1); err != nil {
		t.Fatal(err)
	}
	if e.Current().Pos() != cursor.Pos(2, 0) {
		t.Errorf("Current() after removal = %v", e.Current().Pos())
	}
}

func TestMaxCursors(t *testing.T) {
	e := New(WithMaxCursors(2))
	if err := e.AddCursor(cursor.New()); err != nil {
		t.Fatal(err)
	}
	if err := e.AddCursor(cursor.New()); !errors.Is(err, ErrTooManyCursors) {
		t.Errorf("AddCursor past limit = %v, want ErrTooManyCursors", err)
	}

	capped := New(WithMaxCursors(2), WithCursors(cursor.New(), cursor.New(), cursor.New(), cursor.New()))
	if cs, _ := capped.Cursors(); len(cs) != 2 {
		t.Errorf("WithCursors past the limit kept %d cursors, want 2", len(cs))
	}

	if New(WithMaxCursors(0)).MaxCursors() != cursor.MaxCursors {
		t.Error("invalid limit should keep the default")
	}
}

func TestSetTextKeepsCursors(t *testing.T) {
	e := New(WithContent("abcdef\nxyz"))
	e.Goto(cursor.Pos(5, 1))
	rev := e.RevisionID()

	if e.SetText("ab") == rev {
		t.Error("SetText should produce a new revision")
	}
	if e.Current().Pos() != cursor.Pos(5, 1) {
		t.Error("SetText must not move cursors")
	}

	snap := e.Snapshot()
	if snap.LineCount() != 1 || snap.Text() != "ab" {
		t.Errorf("Snapshot() = %q", snap.Text())
	}
}

func TestMotionsAfterBufferShrinks(t *testing.T) {
	e := New(WithContent("abc\nde\nfgh"), WithCursors(cursor.NewAt(cursor.Pos(1, 2))))
	e.SetText("xyz")

	e.View(func(m *Mover) {
		bounded := []struct {
			name string
			got  Position
			want Position
		}{
			{"Right", m.Right(1), cursor.Pos(2, 0)},
			{"Left", m.Left(1), cursor.Pos(0, 0)},
			{"Up", m.Up(1), cursor.Pos(1, 0)},
			{"Down", m.Down(1), cursor.Pos(1, 0)},
		}
		for _, tt := range bounded {
			if tt.got != tt.want {
				t.Errorf("%s(1) = %v, want %v", tt.name, tt.got, tt.want)
			}
		}

		if p, ok := m.Next(1); !ok || p != cursor.Pos(2, 0) {
			t.Errorf("Next(1) = %v, %v, want (2,0), true", p, ok)
		}
		if p, ok := m.Previous(1); !ok || p != cursor.Pos(0, 0) {
			t.Errorf("Previous(1) = %v, %v, want (0,0), true", p, ok)
		}
		if r, ok := m.Char(); !ok || r != 'y' {
			t.Errorf("Char() = %q, %v, want 'y', true", r, ok)
		}
		if x, ok := m.NextOccurrence('z', 1); !ok || x != 2 {
			t.Errorf("NextOccurrence('z', 1) = %d, %v, want 2, true", x, ok)
		}
		if x, ok := m.PreviousOccurrence('x', 1); !ok || x != 0 {
			t.Errorf("PreviousOccurrence('x', 1) = %d, %v, want 0, true", x, ok)
		}
	})

	if e.Current().Pos() != cursor.Pos(1, 2) {
		t.Errorf("queries moved the cursor to %v", e.Current().Pos())
	}
}

func TestSetMode(t *testing.T) {
	e := New()
	e.SetMode(mode.Replace)
	if e.Current().Mode != mode.Replace {
		t.Errorf("Mode = %v", e.Current().Mode)
	}
}

func TestConcurrentAccess(t *testing.T) {
	e := New(WithContent(strings.Repeat("abcdef\n", 50)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e.View(func(m *Mover) {
					p := m.Down(1)
					if p.Y >= m.Buffer().LineCount() {
						t.Errorf("Down out of range: %v", p)
					}
				})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = e.Update(func(m *Mover, _ *cursor.Registry) error {
					m.Goto(m.Down(1))
					return nil
				})
				if j%25 == 0 {
					e.SetText(strings.Repeat("xy\n", 10+j))
				}
			}
		}()
	}
	wg.Wait()
}
