package motion

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

// genLines draws a small buffer that often contains empty lines.
func genLines(t *rapid.T) []string {
	return rapid.SliceOfN(rapid.StringMatching(`[a-c]{0,5}`), 1, 6).Draw(t, "lines")
}

// genPosition draws a position with 0 <= X <= len(line Y).
func genPosition(t *rapid.T, lines []string) Position {
	y := rapid.IntRange(0, len(lines)-1).Draw(t, "y")
	x := rapid.IntRange(0, len([]rune(lines[y]))).Draw(t, "x")
	return cursor.Pos(x, y)
}

// flatIndex counts the characters strictly before p in flattened order.
func flatIndex(lines []string, p Position) int {
	n := p.X
	for y := 0; y < p.Y; y++ {
		n += len([]rune(lines[y]))
	}
	return n
}

func totalChars(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len([]rune(l))
	}
	return n
}

func moverAt(lines []string, p Position) *Mover {
	reg := cursor.NewRegistry(cursor.NewAt(p))
	return New(buffer.FromStrings(lines...), reg)
}

func TestPropertyAfterZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		if p.X >= len([]rune(lines[p.Y])) {
			t.Skip("end-of-line slot resolves through the wrap branch")
		}
		m := moverAt(lines, p)
		if got, ok := m.After(0, p); !ok || got != p {
			t.Fatalf("After(0, %v) = %v, %v", p, got, ok)
		}
	})
}

func TestPropertyBeforeZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		m := moverAt(lines, p)
		if got, ok := m.Before(0, p); !ok || got != p {
			t.Fatalf("Before(0, %v) = %v, %v", p, got, ok)
		}
	})
}

func TestPropertyAfterMatchesFlatIndex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		if p.X >= len([]rune(lines[p.Y])) {
			t.Skip("end-of-line slot")
		}
		n := rapid.IntRange(0, 30).Draw(t, "n")
		m := moverAt(lines, p)

		q, ok := m.After(n, p)
		want := flatIndex(lines, p) + n
		if ok != (want < totalChars(lines)) {
			t.Fatalf("After(%d, %v) ok = %v, target index %d of %d", n, p, ok, want, totalChars(lines))
		}
		if ok {
			if got := flatIndex(lines, q); got != want {
				t.Fatalf("After(%d, %v) = %v at index %d, want %d", n, p, q, got, want)
			}
			if q.X >= len([]rune(lines[q.Y])) {
				t.Fatalf("After(%d, %v) = %v is not on a character", n, p, q)
			}
		}
	})
}

func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		if p.X >= len([]rune(lines[p.Y])) {
			t.Skip("end-of-line slot")
		}
		n := rapid.IntRange(0, 30).Draw(t, "n")
		m := moverAt(lines, p)

		q, ok := m.After(n, p)
		if !ok {
			return
		}
		back, ok := m.Before(n, q)
		if !ok || back != p {
			t.Fatalf("Before(%d, After(%d, %v) = %v) = %v, %v", n, n, p, q, back, ok)
		}
	})
}

func TestPropertyBeforeNone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		n := rapid.IntRange(0, 30).Draw(t, "n")
		m := moverAt(lines, p)

		q, ok := m.Before(n, p)
		if ok != (flatIndex(lines, p) >= n) {
			t.Fatalf("Before(%d, %v) ok = %v with %d characters before", n, p, ok, flatIndex(lines, p))
		}
		if ok && flatIndex(lines, q) != flatIndex(lines, p)-n {
			t.Fatalf("Before(%d, %v) = %v at wrong index", n, p, q)
		}
	})
}

func TestPropertyBoundedMotions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines(t)
		p := genPosition(t, lines)
		n := rapid.IntRange(0, 20).Draw(t, "n")
		m := moverAt(lines, p)

		for name, got := range map[string]Position{"Right": m.Right(n), "Left": m.Left(n)} {
			if got.Y != p.Y {
				t.Fatalf("%s(%d) changed line: %v", name, n, got)
			}
			if got.X < 0 || got.X > len([]rune(lines[got.Y])) {
				t.Fatalf("%s(%d) from %v = %v outside line", name, n, p, got)
			}
		}

		if got := m.Down(n); got.Y < 0 || got.Y >= len(lines) {
			t.Fatalf("Down(%d) from %v = %v outside buffer", n, p, got)
		}
		if got := m.Down(n); got.X > len([]rune(lines[got.Y])) {
			t.Fatalf("Down(%d) from %v = %v column not bounded", n, p, got)
		}
		if got := m.Up(n); got.Y < 0 || got.X != p.X {
			t.Fatalf("Up(%d) from %v = %v", n, p, got)
		}
	})
}
