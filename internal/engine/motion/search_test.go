package motion

import "testing"

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		x      int
		c      rune
		n      int
		want   int
		wantOK bool
	}{
		{"first", "abcabc", 0, 'c', 1, 2, true},
		{"second", "abcabc", 0, 'c', 2, 5, true},
		{"from middle", "abcabc", 3, 'c', 1, 5, true},
		{"includes cursor column", "abcabc", 2, 'c', 1, 2, true},
		{"not enough matches", "abcabc", 3, 'c', 2, 0, false},
		{"absent", "abcabc", 0, 'z', 1, 0, false},
		{"zero count", "abcabc", 0, 'c', 0, 0, false},
		{"cursor past end", "abc", 5, 'c', 1, 0, false},
		{"unicode", "añbñ", 0, 'ñ', 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMover([]string{tt.line}, tt.x, 0)
			got, ok := m.NextOccurrence(tt.c, tt.n)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("NextOccurrence(%q, %d) = %d, %v; want %d, %v", tt.c, tt.n, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPreviousOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		x      int
		c      rune
		n      int
		want   int
		wantOK bool
	}{
		{"nearest", "abcabc", 5, 'a', 1, 3, true},
		{"second", "abcabc", 5, 'a', 2, 0, true},
		{"excludes cursor column", "abcabc", 3, 'a', 1, 0, true},
		{"not enough matches", "abcabc", 3, 'a', 2, 0, false},
		{"at column zero", "abc", 0, 'a', 1, 0, false},
		{"from end slot", "abc", 3, 'c', 1, 2, true},
		{"sticky column past end", "abc", 10, 'b', 1, 1, true},
		{"zero count", "abcabc", 5, 'a', 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMover([]string{tt.line}, tt.x, 0)
			got, ok := m.PreviousOccurrence(tt.c, tt.n)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("PreviousOccurrence(%q, %d) = %d, %v; want %d, %v", tt.c, tt.n, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOccurrenceStaysOnLine(t *testing.T) {
	m := newMover([]string{"ab", "cb", "b"}, 0, 1)
	if _, ok := m.NextOccurrence('a', 1); ok {
		t.Error("NextOccurrence must not search other lines")
	}
	if _, ok := m.PreviousOccurrence('b', 1); ok {
		t.Error("PreviousOccurrence must not search other lines")
	}
	if got, ok := m.NextOccurrence('b', 1); !ok || got != 1 {
		t.Errorf("NextOccurrence('b', 1) = %d, %v", got, ok)
	}
}
