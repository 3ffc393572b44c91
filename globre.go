// Package globre compiles shell-style glob patterns (*, ?, **, character
// classes, {a,b} alternation) into anchored regular expressions, and proves
// cheap matching shortcuts - literal, prefix, suffix, extension, basename -
// that let a caller skip the regex whenever a plain string test gives the
// same answer.
package globre

// separators are the path separator characters. Both are always treated as
// separators, so a pattern means the same thing on every platform.
const separators = `/\`

// MustParse calls Parse, and panics if unable to parse the pattern.
func MustParse(pattern string, opts ...ParseOption) *Pattern {
	p, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
