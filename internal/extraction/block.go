package extraction

import "errors"

// ErrUnmatched is returned when no closing delimiter balances the opening one
// before the scan limit.
var ErrUnmatched = errors.New("unmatched delimiter")

// BlockMatcher finds the delimiter that closes a block.
//
// With SkipLiterals unset the matcher is a plain counter: braces inside
// strings and comments count like any other brace. With SkipLiterals set,
// line and block comments, regular and verbatim string literals and char
// literals are stepped over.
type BlockMatcher struct {
	SkipLiterals bool
}

// Match scans forward from the opening brace at open and returns the offset
// just past the brace that brings the depth back to zero. The scan never
// reads at or beyond limit; a limit outside the text means end of text.
func (m BlockMatcher) Match(text string, open, limit int) (int, error) {
	if limit < 0 || limit > len(text) {
		limit = len(text)
	}
	if open < 0 || open >= limit || text[open] != '{' {
		return -1, ErrUnmatched
	}

	depth := 1
	for i := open + 1; i < limit; i++ {
		if m.SkipLiterals {
			if next, skipped := skipLiteral(text, i, limit); skipped {
				i = next - 1
				continue
			}
		}
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return -1, ErrUnmatched
}

// skipLiteral reports whether a comment or literal starts at i and, if so,
// the offset just past it (clamped to limit).
func skipLiteral(text string, i, limit int) (int, bool) {
	c := text[i]
	switch {
	case c == '/' && i+1 < limit && text[i+1] == '/':
		for j := i + 2; j < limit; j++ {
			if text[j] == '\n' {
				return j, true
			}
		}
		return limit, true
	case c == '/' && i+1 < limit && text[i+1] == '*':
		for j := i + 2; j+1 < limit; j++ {
			if text[j] == '*' && text[j+1] == '/' {
				return j + 2, true
			}
		}
		return limit, true
	case c == '@' && i+1 < limit && text[i+1] == '"':
		return skipVerbatim(text, i+2, limit), true
	case c == '"' || c == '\'':
		return skipQuoted(text, i+1, limit, c), true
	}
	return i, false
}

// skipQuoted steps over a backslash-escaped literal whose opening quote
// precedes start. Literals stop at a newline so a stray quote cannot
// swallow the rest of the file.
func skipQuoted(text string, start, limit int, quote byte) int {
	for j := start; j < limit; j++ {
		switch text[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			return j
		}
	}
	return limit
}

// skipVerbatim steps over an @"..." literal where "" is an escaped quote.
func skipVerbatim(text string, start, limit int) int {
	for j := start; j < limit; j++ {
		if text[j] != '"' {
			continue
		}
		if j+1 < limit && text[j+1] == '"' {
			j++
			continue
		}
		return j + 1
	}
	return limit
}
