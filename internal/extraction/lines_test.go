package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for LineIndex:
// - Offset 0 and offsets before the first newline map to line 1
// - A newline character belongs to the line it terminates
// - Offsets past the end of text map to the last line + 1 when text ends in a newline
// - SplitLines handles \r\n, a trailing terminator and empty text
// - extractLines clamps the end line and rejects out-of-range starts

func TestLineIndex_LineOf(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex("ab\ncd\n\nef")

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 1}, // the '\n' itself
		{3, 2},
		{5, 2},
		{6, 3},
		{7, 4},
		{8, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.LineOf(tt.offset), "offset %d", tt.offset)
	}
}

func TestLineIndex_EmptyText(t *testing.T) {
	t.Parallel()

	idx := NewLineIndex("")
	assert.Equal(t, 1, idx.LineOf(0))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{}, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\r\n\r\nb\r\n"))
}

func TestExtractLines(t *testing.T) {
	t.Parallel()

	lines := []string{"one", "two", "three"}

	assert.Equal(t, "two\nthree", extractLines(lines, 2, 3))
	assert.Equal(t, "three", extractLines(lines, 3, 10))
	assert.Equal(t, "", extractLines(lines, 0, 2))
	assert.Equal(t, "", extractLines(lines, 4, 5))
}
