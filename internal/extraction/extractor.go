package extraction

import (
	"regexp"
	"strings"
)

// Options controls how the extractor recognises declarations.
type Options struct {
	TypeKeywords        []string
	IncludeProperties   bool
	IncludeConstructors bool
	SkipLiterals        bool
}

// DefaultOptions mirrors the default parsing configuration.
func DefaultOptions() Options {
	return Options{
		TypeKeywords:        DefaultTypeKeywords,
		IncludeProperties:   true,
		IncludeConstructors: true,
		SkipLiterals:        true,
	}
}

// Extractor recovers namespace, directives, types and members from raw text
// using the scanner for candidate sites and the block matcher for structure.
type Extractor struct {
	scanner *Scanner
	matcher BlockMatcher
	opts    Options
}

// NewExtractor creates an extractor for the given options.
func NewExtractor(opts Options) (*Extractor, error) {
	scanner, err := NewScanner(opts.TypeKeywords, opts.IncludeProperties)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		scanner: scanner,
		matcher: BlockMatcher{SkipLiterals: opts.SkipLiterals},
		opts:    opts,
	}, nil
}

// Extract builds the structural model of one file. lines may be nil, in
// which case they are derived from text. Sites that cannot be carved out are
// dropped and reported as warnings; Extract itself never fails.
func (e *Extractor) Extract(path, text string, lines []string) *Result {
	if lines == nil {
		lines = SplitLines(text)
	}

	x := &extraction{
		text:  text,
		lines: lines,
		index: NewLineIndex(text),
	}

	file := &SourceFile{
		Path:       path,
		Text:       text,
		Lines:      lines,
		Namespace:  FindNamespace(text),
		Directives: LeadingDirectives(lines),
		Types:      []TypeDeclaration{},
	}

	for _, site := range e.scanner.TypeSites(text) {
		if t, ok := e.extractType(x, site, file.Namespace); ok {
			file.Types = append(file.Types, t)
		}
	}

	return &Result{File: file, Warnings: x.warnings}
}

// extraction holds the per-call state shared by the extraction steps.
type extraction struct {
	text     string
	lines    []string
	index    *LineIndex
	warnings []Warning
}

func (x *extraction) warn(kind WarningKind, site, name string, offset int, msg string) {
	x.warnings = append(x.warnings, Warning{
		Kind:    kind,
		Site:    site,
		Name:    name,
		Offset:  offset,
		Line:    x.index.LineOf(offset),
		Message: msg,
	})
}

func (e *Extractor) extractType(x *extraction, site Site, namespace string) (TypeDeclaration, bool) {
	open := strings.IndexByte(x.text[site.Offset:], '{')
	if open < 0 {
		x.warn(WarnMissingDelimiter, "type", site.Name, site.Offset, "no opening brace found")
		return TypeDeclaration{}, false
	}
	open += site.Offset

	end, err := e.matcher.Match(x.text, open, len(x.text))
	if err != nil {
		x.warn(WarnUnmatchedDelimiter, "type", site.Name, site.Offset, "unmatched braces in type body")
		return TypeDeclaration{}, false
	}
	closeBrace := end - 1

	header := strings.TrimSpace(x.text[site.Offset:open])
	body := Window{Start: open, End: closeBrace}

	return TypeDeclaration{
		Name:       site.Name,
		Namespace:  namespace,
		Keyword:    site.Keyword,
		Visibility: classifyVisibility(header),
		Header:     header,
		Directives: []string{},
		Members:    e.extractMembers(x, site.Name, body),
		StartLine:  x.index.LineOf(site.Offset),
		EndLine:    x.index.LineOf(closeBrace),
	}, true
}

// extractMembers carves out every member site inside body. A site that starts
// inside an already accepted member belongs to that member's body (a local
// function, an initializer, a statement) and is not a member of the type.
func (e *Extractor) extractMembers(x *extraction, typeName string, body Window) []MemberDeclaration {
	members := []MemberDeclaration{}
	claimed := Window{}

	for _, site := range e.scanner.MemberSites(x.text, body) {
		if claimed.Contains(site.Offset) {
			continue
		}
		if !e.opts.IncludeConstructors && site.Kind == KindMethod && site.Name == typeName {
			continue
		}

		member, end, ok := e.extractMember(x, site, body)
		if !ok {
			continue
		}
		members = append(members, member)
		claimed = Window{Start: site.Offset, End: end}
	}
	return members
}

func (e *Extractor) extractMember(x *extraction, site Site, body Window) (MemberDeclaration, int, bool) {
	rel := strings.IndexByte(x.text[site.Offset:], '{')
	if rel < 0 {
		x.warn(WarnMissingDelimiter, "member", site.Name, site.Offset, "no opening brace found")
		return MemberDeclaration{}, 0, false
	}
	open := site.Offset + rel
	if open >= body.End {
		x.warn(WarnOutOfRange, "member", site.Name, site.Offset, "opening brace lies beyond the type body")
		return MemberDeclaration{}, 0, false
	}

	end, err := e.matcher.Match(x.text, open, body.End)
	if err != nil {
		x.warn(WarnUnmatchedDelimiter, "member", site.Name, site.Offset, "unmatched braces in member body")
		return MemberDeclaration{}, 0, false
	}

	startLine := x.index.LineOf(site.Offset)
	endLine := x.index.LineOf(end - 1)
	full := extractLines(x.lines, startLine, endLine)

	split := strings.IndexByte(full, '{')
	if split < 0 {
		// lines supplied by the caller disagree with text
		x.warn(WarnMissingDelimiter, "member", site.Name, site.Offset, "member lines contain no opening brace")
		return MemberDeclaration{}, 0, false
	}
	signature := strings.TrimSpace(full[:split])

	return MemberDeclaration{
		Name:      site.Name,
		Kind:      site.Kind,
		Signature: signature,
		Body:      full[split:],
		Text:      full,
		Exposed:   modifierPatterns[VisibilityPublic].MatchString(signature),
		StartLine: startLine,
		EndLine:   endLine,
	}, end, true
}

var modifierPatterns = map[Visibility]*regexp.Regexp{
	VisibilityPublic:    regexp.MustCompile(`\bpublic\b`),
	VisibilityPrivate:   regexp.MustCompile(`\bprivate\b`),
	VisibilityProtected: regexp.MustCompile(`\bprotected\b`),
}

// classifyVisibility checks modifiers in fixed precedence order: public, then
// private, then protected; anything else is internal.
func classifyVisibility(header string) Visibility {
	for _, v := range []Visibility{VisibilityPublic, VisibilityPrivate, VisibilityProtected} {
		if modifierPatterns[v].MatchString(header) {
			return v
		}
	}
	return VisibilityInternal
}
