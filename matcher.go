package globre

import (
	"regexp"
	"strings"
)

// PatternMatcher matches a single pattern, by way of its compiled regex.
type PatternMatcher struct {
	pat *Pattern
	re  *regexp.Regexp
}

// CompileMatcher compiles the pattern's regex. The translator only emits
// well-formed regexes, so a compilation failure is an internal defect and
// panics rather than returning an error.
func (p *Pattern) CompileMatcher() *PatternMatcher {
	return &PatternMatcher{
		pat: p,
		re:  regexp.MustCompile(p.regex),
	}
}

// IsMatch reports whether the path matches the pattern. The path is
// normalised first (see NormalizePath); beyond that it is treated as raw
// bytes, and the regex is anchored so only whole paths match.
func (m *PatternMatcher) IsMatch(path string) bool {
	return m.re.MatchString(NormalizePath(path))
}

// Pattern returns the pattern this matcher was compiled from.
func (m *PatternMatcher) Pattern() *Pattern { return m.pat }

// NormalizePath replaces backslashes in the path with slashes, so a pattern
// means the same thing on every platform. IsMatch applies it itself; a
// caller running a MatchStrategy's own string test must apply it to the
// path first, or the test and the regex can disagree on paths with
// backslash separators.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// PathBase returns the final component of the path.
func PathBase(path string) string {
	if i := strings.LastIndexAny(path, separators); i >= 0 {
		return path[i+1:]
	}
	return path
}

// PathExt returns the extension of the path's basename, including the
// leading dot. Unlike filepath.Ext, a basename like .rs is considered to
// have the extension .rs.
func PathExt(path string) (string, bool) {
	base := PathBase(path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return "", false
	}
	return base[i:], true
}
