package splitter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

const (
	// DefaultNamePattern produces <TypeName>_Part<N><ext>.
	DefaultNamePattern = "{TypeName}_Part{PartNumber}{Extension}"
	DefaultExtension   = ".cs"

	generatedComment = "// <auto-generated>Split by splitcs. Regenerate instead of editing by hand.</auto-generated>"
)

var partialPattern = regexp.MustCompile(`\bpartial\b`)

// Renderer turns one member group into the lines of a partial-type document.
// It never touches the filesystem.
type Renderer struct {
	Indent           string // one indentation unit
	GeneratedComment bool
	Extension        string
	NamePattern      string
}

// DefaultRenderer indents with four spaces and names files Foo_Part1.cs.
func DefaultRenderer() Renderer {
	return Renderer{
		Indent:      "    ",
		Extension:   DefaultExtension,
		NamePattern: DefaultNamePattern,
	}
}

// Render builds the document for group. directives is the file-level using
// list; when it is empty the type's own list is used.
func (r Renderer) Render(t *extraction.TypeDeclaration, directives []string, group MemberGroup) []string {
	if len(directives) == 0 {
		directives = t.Directives
	}

	var out []string
	if r.GeneratedComment {
		out = append(out, generatedComment, "")
	}
	if len(directives) > 0 {
		out = append(out, directives...)
		out = append(out, "")
	}
	if t.Namespace != "" {
		out = append(out, "namespace "+t.Namespace+";", "")
	}

	out = append(out, partialHeader(t.Header, t.Keyword), "{")
	for i, m := range group {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, r.indent(m.Text)...)
	}
	out = append(out, "}")

	return out
}

func (r Renderer) indent(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = r.Indent + trimmed
	}
	return lines
}

// partialHeader rewrites the first bare occurrence of keyword to
// "partial <keyword>". Headers that are already partial are returned as is.
func partialHeader(header, keyword string) string {
	if keyword == "" || partialPattern.MatchString(header) {
		return header
	}
	loc := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`).FindStringIndex(header)
	if loc == nil {
		return header
	}
	return header[:loc[0]] + "partial " + header[loc[0]:]
}

// FileName expands the naming pattern for the part-th (1-based) group.
func (r Renderer) FileName(typeName string, part int) string {
	pattern := r.NamePattern
	if pattern == "" {
		pattern = DefaultNamePattern
	}
	ext := r.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return strings.NewReplacer(
		"{TypeName}", typeName,
		"{ClassName}", typeName,
		"{PartNumber}", strconv.Itoa(part),
		"{Extension}", ext,
	).Replace(pattern)
}
