package buffer

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// RevisionID uniquely identifies a buffer revision.
// Each content replacement creates a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Snapshot is an immutable Reader captured from a Buffer.
// It is safe for concurrent use and never observes later edits.
type Snapshot struct {
	lines      []line
	revisionID RevisionID
	lineEnding LineEnding
}

func newSnapshot(lines []line, rev RevisionID, le LineEnding) *Snapshot {
	return &Snapshot{lines: lines, revisionID: rev, lineEnding: le}
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Line returns the line at index. It panics if index is out of range.
func (s *Snapshot) Line(index int) Line {
	if index < 0 || index >= len(s.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0, %d)", index, len(s.lines)))
	}
	return s.lines[index]
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// Text returns the full content joined with the snapshot's line ending.
func (s *Snapshot) Text() string {
	parts := make([]string, len(s.lines))
	for i, l := range s.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, s.lineEnding.Sequence())
}
