package splitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// InputMatcher decides whether an input path looks like a supported source
// file. A mismatch is only ever a warning.
type InputMatcher struct {
	patterns []compiledPattern
}

// NewInputMatcher compiles the given glob patterns. No patterns means every
// path matches.
func NewInputMatcher(patterns []string) (*InputMatcher, error) {
	m := &InputMatcher{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, compiledPattern{pattern: pattern, glob: g})
	}
	return m, nil
}

// Match reports whether path matches any pattern. A leading "**/" also
// matches files without a directory part, so "**/*.cs" accepts "Foo.cs".
func (m *InputMatcher) Match(path string) bool {
	if len(m.patterns) == 0 {
		return true
	}
	path = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")

	for _, cp := range m.patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range m.patterns {
			if !strings.HasPrefix(cp.pattern, "**/") {
				continue
			}
			simplified, err := glob.Compile(strings.TrimPrefix(cp.pattern, "**/"), '/')
			if err == nil && simplified.Match(path) {
				return true
			}
		}
	}
	return false
}

// Patterns returns the configured pattern strings.
func (m *InputMatcher) Patterns() []string {
	out := make([]string, 0, len(m.patterns))
	for _, cp := range m.patterns {
		out = append(out, cp.pattern)
	}
	return out
}
