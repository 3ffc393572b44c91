package globre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every case is checked against the compiled regex and against the
// strategic matcher; the two must always agree (for RequiredExtension the
// strategic path already includes the regex confirmation).
func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		opts    []ParseOption
		want    bool
	}{
		{"a", "a", nil, true},
		{"a*b", "a_b", nil, true},
		{"a*b*c", "abc", nil, true},
		{"a*b*c", "a_b_c", nil, true},
		{"a*b*c", "a___b___c", nil, true},
		{"abc*abc*abc", "abcabcabcabcabcabcabc", nil, true},
		{"a*a*a*a*a*a*a*a*a", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", nil, true},
		{"a*b[xyz]c*d", "abxcdbxcddd", nil, true},
		{"*.rs", ".rs", nil, true},

		{"some/**/needle.txt", "some/needle.txt", nil, true},
		{"some/**/needle.txt", "some/one/needle.txt", nil, true},
		{"some/**/needle.txt", "some/one/two/needle.txt", nil, true},
		{"some/**/needle.txt", "some/other/needle.txt", nil, true},
		{"**", "abcde", nil, true},
		{"**", "", nil, true},
		{"**", ".asdf", nil, true},
		{"**", "/x/.asdf", nil, true},
		{"some/**/**/needle.txt", "some/needle.txt", nil, true},
		{"some/**/**/needle.txt", "some/one/needle.txt", nil, true},
		{"some/**/**/needle.txt", "some/one/two/needle.txt", nil, true},
		{"some/**/**/needle.txt", "some/other/needle.txt", nil, true},
		{"**/test", "one/two/test", nil, true},
		{"**/test", "one/test", nil, true},
		{"**/test", "test", nil, true},
		{"/**/test", "/one/two/test", nil, true},
		{"/**/test", "/one/test", nil, true},
		{"/**/test", "/test", nil, true},
		{"**/.*", ".abc", nil, true},
		{"**/.*", "abc/.abc", nil, true},
		{".*/**", ".abc", nil, true},
		{".*/**", ".abc/abc", nil, true},
		{"foo/**", "foo", nil, true},
		{"**/foo/bar", "foo/bar", nil, true},

		{"a[0-9]b", "a0b", nil, true},
		{"a[0-9]b", "a9b", nil, true},
		{"a[!0-9]b", "a_b", nil, true},
		{"[a-z123]", "1", nil, true},
		{"[1a-z23]", "1", nil, true},
		{"[123a-z]", "1", nil, true},
		{"[abc-]", "-", nil, true},
		{"[-abc]", "-", nil, true},
		{"[-a-c]", "b", nil, true},
		{"[a-c-]", "b", nil, true},
		{"[-]", "-", nil, true},

		{"*hello.txt", "hello.txt", nil, true},
		{"*hello.txt", "gareth_says_hello.txt", nil, true},
		{"*hello.txt", "some/path/to/hello.txt", nil, true},
		{"*hello.txt", `some\path\to\hello.txt`, nil, true},
		{"*hello.txt", "/an/absolute/path/to/hello.txt", nil, true},
		{"*some/path/to/hello.txt", "some/path/to/hello.txt", nil, true},
		{"*some/path/to/hello.txt", "a/bigger/some/path/to/hello.txt", nil, true},

		// Backslash separators normalise to slashes before matching.
		{"**/foo", `x\foo`, nil, true},
		{"**/foo/bar", `x\foo/bar`, nil, true},
		{"abc/def", `abc\def`, nil, true},
		{`**/a\b`, `a\b`, nil, false},

		{"_[[]_[]]_[?]_[*]_!_", "_[_]_?_*_!_", nil, true},

		{"aBcDeFg", "aBcDeFg", casei, true},
		{"aBcDeFg", "abcdefg", casei, true},
		{"aBcDeFg", "ABCDEFG", casei, true},
		{"aBcDeFg", "AbCdEfG", casei, true},

		{"a,b", "a,b", nil, true},
		{",", ",", nil, true},
		{"{a,b}", "a", nil, true},
		{"{a,b}", "b", nil, true},
		{"{**/src/**,foo}", "abc/src/bar", nil, true},
		{"{**/src/**,foo}", "foo", nil, true},
		{"{[}],foo}", "}", nil, true},
		{"{foo}", "foo", nil, true},
		{"{}", "", nil, true},
		{"{,}", "", nil, true},
		{"{*.foo,*.bar,*.wat}", "test.foo", nil, true},
		{"{*.foo,*.bar,*.wat}", "test.bar", nil, true},
		{"{*.foo,*.bar,*.wat}", "test.wat", nil, true},
		{"{*.foo,*.bar,*.wat}", "test.baz", nil, false},

		{"abc/def", "abc/def", slashlit, true},
		{"abc?def", "abc/def", slashlit, false},
		{"abc?def", `abc\def`, slashlit, false},
		{"abc*def", "abc/def", slashlit, false},
		// A class matches a separator even in literal-separator mode.
		{"abc[/]def", "abc/def", slashlit, true},

		{"a*b*c", "abcd", nil, false},
		{"abc*abc*abc", "abcabcabcabcabcabcabca", nil, false},
		{"some/**/needle.txt", "some/other/notthis.txt", nil, false},
		{"some/**/**/needle.txt", "some/other/notthis.txt", nil, false},
		{"/**/test", "test", nil, false},
		{"/**/test", "/one/notthis", nil, false},
		{"/**/test", "/notthis", nil, false},
		{"**/.*", "ab.c", nil, false},
		{"**/.*", "abc/ab.c", nil, false},
		{".*/**", "a.bc", nil, false},
		{".*/**", "abc/a.bc", nil, false},
		{"a[0-9]b", "a_b", nil, false},
		{"a[!0-9]b", "a0b", nil, false},
		{"a[!0-9]b", "a9b", nil, false},
		{"[!-]", "-", nil, false},
		{"*hello.txt", "hello.txt-and-then-some", nil, false},
		{"*hello.txt", "goodbye.txt", nil, false},
		{"*some/path/to/hello.txt", "some/path/to/hello.txt-and-then-some", nil, false},
		{"*some/path/to/hello.txt", "some/other/path/to/hello.txt", nil, false},
		{"a", "foo/a", nil, false},
		{"./foo", "foo", nil, false},
		{"**/foo", "foofoo", nil, false},
		{"**/foo/bar", "foofoo/bar", nil, false},
		{"/*.c", "mozilla-sha1/sha1.c", nil, false},
		{"*.c", "mozilla-sha1/sha1.c", slashlit, false},
		{"**/m4/ltoptions.m4", "csharp/src/packages/repositories.config", slashlit, false},
	}

	for _, test := range tests {
		p, err := Parse(test.pattern, test.opts...)
		require.NoError(t, err, "Parse(%q)", test.pattern)
		m := p.CompileMatcher()
		assert.Equal(t, test.want, m.IsMatch(test.path),
			"IsMatch(pattern %q, path %q)", test.pattern, test.path)
		assert.Equal(t, test.want, strategicMatch(p, test.path),
			"strategicMatch(pattern %q, path %q)", test.pattern, test.path)
	}
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "a/b/c", NormalizePath(`a\b\c`))
	assert.Equal(t, "c.go", PathBase("a/b/c.go"))
	assert.Equal(t, "c", PathBase(`a\b\c`))
	ext, ok := PathExt("a/b.rs")
	require.True(t, ok)
	assert.Equal(t, ".rs", ext)
	ext, ok = PathExt("a/.rs")
	require.True(t, ok)
	assert.Equal(t, ".rs", ext)
	_, ok = PathExt("a.b/c")
	assert.False(t, ok)
}

func TestMatcherAccessors(t *testing.T) {
	p := MustParse("some/**/needle.txt")
	m := p.CompileMatcher()
	assert.Equal(t, p, m.Pattern())
	assert.Equal(t, "some/**/needle.txt", p.Glob())
	assert.Equal(t, "some/**/needle.txt", p.String())
	assert.Equal(t, p.Regex(), m.Pattern().Regex())
}
