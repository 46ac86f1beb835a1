package splitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mvp-joe/splitcs/internal/extraction"
)

// Test Plan for OutputRenderer:
// - Full document layout: directives, namespace, partial header, members, closing brace
// - Member lines are stripped and re-indented by one unit; blank lines stay blank
// - One blank line between members, none after the last
// - Directives and namespace sections are omitted when empty
// - File-level directives win over type-local ones; type-local ones are the fallback
// - Already partial headers are not rewritten; only the keyword token is replaced
// - Generated comment and custom indentation
// - File names follow the naming pattern

func sampleType() *extraction.TypeDeclaration {
	return &extraction.TypeDeclaration{
		Name:       "Person",
		Namespace:  "People",
		Keyword:    "class",
		Header:     "public class Person : Entity",
		Directives: []string{"using Local;"},
	}
}

func sampleGroup() MemberGroup {
	return MemberGroup{
		{Name: "A", Text: "    public void A()\n    {\n        Run();\n\n    }"},
		{Name: "B", Text: "\tpublic int B { get; set; }"},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	got := DefaultRenderer().Render(sampleType(), []string{"using System;", "using System.Linq;"}, sampleGroup())
	want := []string{
		"using System;",
		"using System.Linq;",
		"",
		"namespace People;",
		"",
		"public partial class Person : Entity",
		"{",
		"    public void A()",
		"    {",
		"    Run();",
		"",
		"    }",
		"",
		"    public int B { get; set; }",
		"}",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_DirectiveFallbackAndNoNamespace(t *testing.T) {
	t.Parallel()

	typ := sampleType()
	typ.Namespace = ""

	got := DefaultRenderer().Render(typ, nil, MemberGroup{{Name: "B", Text: "int B { get; }"}})
	want := []string{
		"using Local;",
		"",
		"public partial class Person : Entity",
		"{",
		"    int B { get; }",
		"}",
	}
	assert.Equal(t, want, got)

	typ.Directives = nil
	got = DefaultRenderer().Render(typ, nil, MemberGroup{{Name: "B", Text: "int B { get; }"}})
	assert.Equal(t, "public partial class Person : Entity", got[0])
}

func TestPartialHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header, keyword, want string
	}{
		{"public class Person", "class", "public partial class Person"},
		{"class Person : Classifier", "class", "partial class Person : Classifier"},
		{"public partial class Person", "class", "public partial class Person"},
		{"internal sealed struct Point", "struct", "internal sealed partial struct Point"},
		{"public record struct Point", "record", "public partial record struct Point"},
		{"public class Person", "", "public class Person"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, partialHeader(tt.header, tt.keyword), tt.header)
	}
}

func TestRenderer_Options(t *testing.T) {
	t.Parallel()

	r := Renderer{Indent: "\t", GeneratedComment: true}
	got := r.Render(sampleType(), nil, MemberGroup{{Name: "B", Text: "  int B { get; }"}})

	assert.Equal(t, generatedComment, got[0])
	assert.Equal(t, "", got[1])
	assert.Contains(t, got, "\tint B { get; }")
}

func TestRenderer_FileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Person_Part1.cs", DefaultRenderer().FileName("Person", 1))
	assert.Equal(t, "Person_Part12.cs", Renderer{}.FileName("Person", 12))

	legacy := Renderer{NamePattern: "{ClassName}_Part{PartNumber}.cs"}
	assert.Equal(t, "Person_Part2.cs", legacy.FileName("Person", 2))

	custom := Renderer{NamePattern: "{TypeName}.{PartNumber}{Extension}", Extension: ".g.cs"}
	assert.Equal(t, "Person.3.g.cs", custom.FileName("Person", 3))
}
