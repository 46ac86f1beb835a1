package extraction

import (
	"fmt"
	"strings"
)

// Visibility is the access level of a type declaration.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
	VisibilityInternal  Visibility = "internal"
)

// MemberKind distinguishes methods from properties with accessor blocks.
type MemberKind string

const (
	KindMethod   MemberKind = "method"
	KindProperty MemberKind = "property"
)

// SourceFile is the extracted model of one input file.
// It is built once by Extract and never modified afterwards.
type SourceFile struct {
	Path       string
	Text       string
	Lines      []string
	Namespace  string            // empty when the file declares none
	Directives []string          // leading using directives, verbatim
	Types      []TypeDeclaration // in site order
}

// FindType resolves a type by name, ignoring case.
func (f *SourceFile) FindType(name string) (*TypeDeclaration, bool) {
	for i := range f.Types {
		if strings.EqualFold(f.Types[i].Name, name) {
			return &f.Types[i], true
		}
	}
	return nil, false
}

// MemberCount returns the number of members across all types.
func (f *SourceFile) MemberCount() int {
	n := 0
	for _, t := range f.Types {
		n += len(t.Members)
	}
	return n
}

// TypeDeclaration represents one discovered type.
type TypeDeclaration struct {
	Name       string
	Namespace  string
	Keyword    string // "class", "struct", ...
	Visibility Visibility
	Header     string   // declaration text up to the opening brace, trimmed
	Directives []string // type-local directives; the file-level list wins when present
	Members    []MemberDeclaration
	StartLine  int
	EndLine    int
}

// ExposedCount returns how many members are public.
func (t *TypeDeclaration) ExposedCount() int {
	n := 0
	for _, m := range t.Members {
		if m.Exposed {
			n++
		}
	}
	return n
}

// MemberDeclaration represents a method or a property with an accessor block.
type MemberDeclaration struct {
	Name      string
	Kind      MemberKind
	Signature string // text before the body's opening brace, trimmed
	Body      string // opening brace through matching closing brace
	Text      string // full reconstructed unit, taken from the source lines
	Exposed   bool
	StartLine int
	EndLine   int
}

// WarningKind classifies a recoverable extraction failure.
type WarningKind string

const (
	WarnMissingDelimiter   WarningKind = "missing_delimiter"
	WarnUnmatchedDelimiter WarningKind = "unmatched_delimiter"
	WarnOutOfRange         WarningKind = "delimiter_out_of_range"
)

// Warning records a type or member site that was dropped.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Site    string      `json:"site" yaml:"site"` // "type" or "member"
	Name    string      `json:"name" yaml:"name"`
	Offset  int         `json:"offset" yaml:"offset"`
	Line    int         `json:"line" yaml:"line"`
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s %q: %s", w.Line, w.Site, w.Name, w.Message)
}

// Result bundles the extracted file with the warnings produced along the way.
type Result struct {
	File     *SourceFile
	Warnings []Warning
}
