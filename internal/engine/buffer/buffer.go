package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding parses "lf", "crlf" or "cr".
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(s) {
	case "lf", "":
		return LineEndingLF, nil
	case "crlf":
		return LineEndingCRLF, nil
	case "cr":
		return LineEndingCR, nil
	default:
		return LineEndingLF, fmt.Errorf("unknown line ending %q", s)
	}
}

// Buffer is a line-structured text store implementing Reader.
// All methods are thread-safe. Lines handed out by Line are immutable:
// replacing the content swaps in new lines and leaves old ones intact.
type Buffer struct {
	mu         sync.RWMutex
	lines      []line
	revisionID RevisionID
	lineEnding LineEnding
}

// NewBuffer creates a new buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []line{{}},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = parseLines(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)

	// Read everything first: CRLF pairs may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b.lines = parseLines(string(data))
	return b, nil
}

// parseLines splits text on any line ending. A trailing terminator yields
// a final empty line, and empty text yields one empty line.
func parseLines(s string) []line {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return splitLines(strings.Split(s, "\n"))
}

func splitLines(parts []string) []line {
	lines := make([]line, len(parts))
	for i, p := range parts {
		lines[i] = line(p)
	}
	return lines
}

// Read Operations

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns the line at index. It panics if index is out of range.
func (b *Buffer) Line(index int) Line {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if index < 0 || index >= len(b.lines) {
		panic(fmt.Sprintf("buffer: line %d out of range [0, %d)", index, len(b.lines)))
	}
	return b.lines[index]
}

// LineText returns the text of the line at index.
func (b *Buffer) LineText(index int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if index < 0 || index >= len(b.lines) {
		return "", fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	return string(b.lines[index]), nil
}

// Text returns the full content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	sep := b.lineEnding.Sequence()
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// Len returns the number of characters in the buffer, excluding line endings.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// RevisionID returns the current revision.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the line ending used by Text.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Write Operations

// SetText replaces the whole content and starts a new revision.
func (b *Buffer) SetText(s string) RevisionID {
	lines := parseLines(s)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = lines
	b.revisionID = NewRevisionID()
	return b.revisionID
}

// SetLineEnding sets the line ending used by Text.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// Snapshot returns a read-only view of the current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([]line, len(b.lines))
	copy(lines, b.lines)
	return newSnapshot(lines, b.revisionID, b.lineEnding)
}
