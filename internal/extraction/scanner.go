package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	typeModifiers   = `(?:(?:public|private|protected|internal|static|abstract|sealed|partial|readonly|unsafe|new)\s+)*`
	memberModifiers = `(?:(?:public|private|protected|internal|static|virtual|override|abstract|sealed|async|extern|unsafe|new|readonly)\s+)*`
	returnType      = `(?:\w+(?:<[^>]*>)?|\w+\[\]|\w+\?)`
)

var (
	namespacePattern = regexp.MustCompile(`namespace\s+([^;\s{]+)`)
	usingPattern     = regexp.MustCompile(`^using\s+.*;$`)

	methodPattern   = regexp.MustCompile(`\b` + memberModifiers + returnType + `\s+(\w+)\s*\([^{;]*\)\s*\{`)
	propertyPattern = regexp.MustCompile(`\b` + memberModifiers + returnType + `\s+(\w+)\s*\{\s*(?:get|set)\b`)
)

// DefaultTypeKeywords is used when no keyword list is configured.
var DefaultTypeKeywords = []string{"class"}

var supportedKeywords = map[string]bool{
	"class":     true,
	"struct":    true,
	"record":    true,
	"interface": true,
}

// SupportedKeyword reports whether kw can be used as a type keyword.
func SupportedKeyword(kw string) bool {
	return supportedKeywords[kw]
}

// Window is a half-open byte range [Start, End) that bounds a scan.
type Window struct {
	Start int
	End   int
}

// Contains reports whether offset lies inside the window.
func (w Window) Contains(offset int) bool {
	return offset >= w.Start && offset < w.End
}

// Site is a candidate declaration position found by pattern matching.
// Sites carry no structural guarantee; the block matcher validates them.
type Site struct {
	Offset  int
	End     int // offset just past the matched text
	Name    string
	Keyword string     // type sites only
	Header  string     // type sites only: text up to the opening brace, trimmed
	Kind    MemberKind // member sites only
}

// Scanner finds type and member sites with regular expressions.
type Scanner struct {
	typePattern       *regexp.Regexp
	includeProperties bool
}

// NewScanner compiles the type-site pattern for the given keywords.
func NewScanner(keywords []string, includeProperties bool) (*Scanner, error) {
	if len(keywords) == 0 {
		keywords = DefaultTypeKeywords
	}
	for _, kw := range keywords {
		if !SupportedKeyword(kw) {
			return nil, fmt.Errorf("unsupported type keyword %q", kw)
		}
	}

	// "record struct" and "record class" keep record as the keyword.
	pattern := `\b` + typeModifiers + `(` + strings.Join(keywords, "|") + `)\s+(?:(?:struct|class)\s+)?(\w+)[^{;]*\{`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile type pattern: %w", err)
	}

	return &Scanner{
		typePattern:       re,
		includeProperties: includeProperties,
	}, nil
}

// TypeSites returns every type-site match in text, in source order.
// Sites nested inside other types are reported as well.
func (s *Scanner) TypeSites(text string) []Site {
	matches := s.typePattern.FindAllStringSubmatchIndex(text, -1)
	sites := make([]Site, 0, len(matches))
	for _, m := range matches {
		sites = append(sites, Site{
			Offset:  m[0],
			End:     m[1],
			Keyword: text[m[2]:m[3]],
			Name:    text[m[4]:m[5]],
			Header:  strings.TrimSpace(text[m[0] : m[1]-1]),
		})
	}
	return sites
}

// MemberSites returns method and property sites inside window, merged by offset.
func (s *Scanner) MemberSites(text string, window Window) []Site {
	if window.Start < 0 {
		window.Start = 0
	}
	if window.End > len(text) {
		window.End = len(text)
	}
	if window.Start >= window.End {
		return nil
	}
	region := text[window.Start:window.End]

	var sites []Site
	collect := func(re *regexp.Regexp, kind MemberKind) {
		for _, m := range re.FindAllStringSubmatchIndex(region, -1) {
			sites = append(sites, Site{
				Offset: window.Start + m[0],
				End:    window.Start + m[1],
				Name:   region[m[2]:m[3]],
				Kind:   kind,
			})
		}
	}

	collect(methodPattern, KindMethod)
	if s.includeProperties {
		collect(propertyPattern, KindProperty)
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Offset < sites[j].Offset
	})
	return sites
}

// FindNamespace returns the first namespace name in text, or "".
func FindNamespace(text string) string {
	m := namespacePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// LeadingDirectives collects the using directives at the top of a file.
// Blank lines and // comments are skipped; any other line ends the scan.
func LeadingDirectives(lines []string) []string {
	directives := []string{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case usingPattern.MatchString(trimmed):
			directives = append(directives, line)
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
			continue
		default:
			return directives
		}
	}
	return directives
}
