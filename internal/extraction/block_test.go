package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for BlockMatcher:
// - Returns the offset just past the balancing brace for flat and nested blocks
// - Between open and the returned offset, opens and closes are balanced
// - Fails when the open offset is not a brace or is out of range
// - Fails when the limit cuts the block short
// - Naive mode counts braces in literals; literal mode skips them
// - Literal mode handles comments, escapes and verbatim strings

func TestBlockMatcher_Balanced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		open int
		want int
	}{
		{"flat", "{}", 0, 2},
		{"nested", "{ a { b } { c { d } } }", 0, 23},
		{"inner block", "{ a { b } }", 4, 9},
		{"trailing text", "x { y } z", 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BlockMatcher{}.Match(tt.text, tt.open, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			span := tt.text[tt.open:got]
			assert.Equal(t, strings.Count(span, "{"), strings.Count(span, "}"))
		})
	}
}

func TestBlockMatcher_Failures(t *testing.T) {
	t.Parallel()

	m := BlockMatcher{}

	_, err := m.Match("abc", 0, -1)
	assert.ErrorIs(t, err, ErrUnmatched)

	_, err = m.Match("{", 5, -1)
	assert.ErrorIs(t, err, ErrUnmatched)

	_, err = m.Match("{ { }", 0, -1)
	assert.ErrorIs(t, err, ErrUnmatched)

	// The closing brace sits at the limit and must not be read.
	_, err = m.Match("{ }", 0, 2)
	assert.ErrorIs(t, err, ErrUnmatched)
}

func TestBlockMatcher_Literals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		naive int // -1 when the naive counter fails
		skip  int
	}{
		{"string", `{ s = "{"; }`, -1, 12},
		{"char", `{ c = '}'; x }`, 8, 14},
		{"escaped quote", `{ s = "\"{"; }`, -1, 14},
		{"verbatim", `{ s = @"a""{"; }`, -1, 16},
		{"line comment", "{ // }\n}", 6, 8},
		{"block comment", "{ /* { */ }", -1, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BlockMatcher{}.Match(tt.text, 0, -1)
			if tt.naive < 0 {
				assert.ErrorIs(t, err, ErrUnmatched)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.naive, got)
			}

			got, err = BlockMatcher{SkipLiterals: true}.Match(tt.text, 0, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.skip, got)
		})
	}
}
