package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Scanner:
// - Type sites capture keyword, name and header across newlines
// - Record structs and record classes are named after the identifier, not the modifier
// - Only configured keywords produce type sites; unknown keywords are rejected
// - Nested type sites are reported alongside their parents
// - Member sites cover methods (generic and array return types) and properties
// - Abstract and expression-bodied members without a block are not sites
// - Member sites are confined to the window and ordered by offset
// - Namespace lookup handles block and file-scoped forms
// - Leading directives stop at the first non-directive line

func TestScanner_TypeSites(t *testing.T) {
	t.Parallel()

	text := "public sealed class Foo : Bar\n{\n}\ninternal struct Baz {}\n"

	s, err := NewScanner([]string{"class", "struct"}, true)
	require.NoError(t, err)

	sites := s.TypeSites(text)
	require.Len(t, sites, 2)

	assert.Equal(t, "Foo", sites[0].Name)
	assert.Equal(t, "class", sites[0].Keyword)
	assert.Equal(t, "public sealed class Foo : Bar", sites[0].Header)
	assert.Equal(t, 0, sites[0].Offset)

	assert.Equal(t, "Baz", sites[1].Name)
	assert.Equal(t, "struct", sites[1].Keyword)
	assert.Equal(t, "internal struct Baz", sites[1].Header)
	assert.True(t, strings.HasPrefix(text[sites[1].Offset:], "internal struct"))
}

func TestScanner_RecordStructAndClass(t *testing.T) {
	t.Parallel()

	text := "public record struct Point\n{\n}\ninternal record class Line(int A)\n{\n}\nrecord Plain {}\n"

	s, err := NewScanner([]string{"record"}, true)
	require.NoError(t, err)

	sites := s.TypeSites(text)
	require.Len(t, sites, 3)

	assert.Equal(t, "Point", sites[0].Name)
	assert.Equal(t, "record", sites[0].Keyword)
	assert.Equal(t, "public record struct Point", sites[0].Header)

	assert.Equal(t, "Line", sites[1].Name)
	assert.Equal(t, "record", sites[1].Keyword)
	assert.Equal(t, "internal record class Line(int A)", sites[1].Header)

	assert.Equal(t, "Plain", sites[2].Name)
}

func TestScanner_DefaultKeywords(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(nil, true)
	require.NoError(t, err)

	sites := s.TypeSites("struct A {}\nclass B {}\nsubclass C {}\n")
	require.Len(t, sites, 1)
	assert.Equal(t, "B", sites[0].Name)
}

func TestScanner_UnsupportedKeyword(t *testing.T) {
	t.Parallel()

	_, err := NewScanner([]string{"class", "enum"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enum")
}

func TestScanner_NestedTypeSites(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(nil, true)
	require.NoError(t, err)

	sites := s.TypeSites("class Outer\n{\n    class Inner\n    {\n    }\n}\n")
	require.Len(t, sites, 2)
	assert.Equal(t, "Outer", sites[0].Name)
	assert.Equal(t, "Inner", sites[1].Name)
	assert.Less(t, sites[0].Offset, sites[1].Offset)
}

const memberFixture = `class C
{
    public static List<int> Items() { return null; }
    public string Name { get; set; }
    private int[] Data() { }
    abstract void Skip();
    public int Twice(int x) => x * 2;
}
`

func TestScanner_MemberSites(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(nil, true)
	require.NoError(t, err)

	open := strings.IndexByte(memberFixture, '{')
	end := strings.LastIndexByte(memberFixture, '}')
	sites := s.MemberSites(memberFixture, Window{Start: open, End: end})

	require.Len(t, sites, 3)
	assert.Equal(t, "Items", sites[0].Name)
	assert.Equal(t, KindMethod, sites[0].Kind)
	assert.Equal(t, "Name", sites[1].Name)
	assert.Equal(t, KindProperty, sites[1].Kind)
	assert.Equal(t, "Data", sites[2].Name)
	assert.Equal(t, KindMethod, sites[2].Kind)

	assert.True(t, strings.HasPrefix(memberFixture[sites[0].Offset:], "public static List<int> Items"))
	for i := 1; i < len(sites); i++ {
		assert.Less(t, sites[i-1].Offset, sites[i].Offset)
	}
}

func TestScanner_MemberSitesWithoutProperties(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(nil, false)
	require.NoError(t, err)

	sites := s.MemberSites(memberFixture, Window{Start: 0, End: len(memberFixture)})
	require.Len(t, sites, 2)
	assert.Equal(t, "Items", sites[0].Name)
	assert.Equal(t, "Data", sites[1].Name)
}

func TestScanner_MemberSitesWindow(t *testing.T) {
	t.Parallel()

	s, err := NewScanner(nil, true)
	require.NoError(t, err)

	data := strings.Index(memberFixture, "private int[]")
	sites := s.MemberSites(memberFixture, Window{Start: data, End: len(memberFixture) + 100})
	require.Len(t, sites, 1)
	assert.Equal(t, "Data", sites[0].Name)

	assert.Empty(t, s.MemberSites(memberFixture, Window{Start: 10, End: 10}))
}

func TestFindNamespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A.B", FindNamespace("using X;\nnamespace A.B;\nclass C {}"))
	assert.Equal(t, "Acme", FindNamespace("namespace Acme\n{\n}"))
	assert.Equal(t, "Acme", FindNamespace("namespace Acme{}"))
	assert.Equal(t, "", FindNamespace("class C {}"))
}

func TestLeadingDirectives(t *testing.T) {
	t.Parallel()

	lines := []string{
		"// header",
		"using System;",
		"",
		"using static Foo.Bar;",
		"namespace X;",
		"using Late;",
	}

	assert.Equal(t, []string{"using System;", "using static Foo.Bar;"}, LeadingDirectives(lines))
	assert.Equal(t, []string{}, LeadingDirectives(nil))
}
