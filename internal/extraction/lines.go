package extraction

import (
	"sort"
	"strings"
)

// LineIndex maps byte offsets in a text to 1-based line numbers.
type LineIndex struct {
	newlines []int
}

// NewLineIndex records the offset of every '\n' in text.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{newlines: make([]int, 0, strings.Count(text, "\n"))}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx.newlines = append(idx.newlines, i)
		}
	}
	return idx
}

// LineOf returns 1 + the number of newlines strictly before offset.
func (idx *LineIndex) LineOf(offset int) int {
	return sort.SearchInts(idx.newlines, offset) + 1
}

// SplitLines splits text into lines the way a line reader would:
// "\r\n" and "\n" both terminate a line and a final terminator does not
// produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// extractLines returns lines startLine..endLine (1-based, inclusive) joined by "\n".
func extractLines(lines []string, startLine, endLine int) string {
	if startLine < 1 || endLine < 1 || startLine > len(lines) {
		return ""
	}

	start := startLine - 1
	end := endLine
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}
