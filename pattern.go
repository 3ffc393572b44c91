package globre

import "strings"

// Pattern is a successfully parsed glob pattern. It cannot match paths by
// itself, but it carries an equivalent anchored regex (see CompileMatcher)
// and can prove cheaper equivalences for common pattern shapes (see the
// extraction methods and MatchStrategy).
//
// A Pattern is immutable once parsed and safe for concurrent use.
type Pattern struct {
	glob   string
	regex  string
	cfg    parseConfig
	tokens tokens
}

// Parse compiles a pattern with the given options.
func Parse(pattern string, opts ...ParseOption) (*Pattern, error) {
	cfg := defaultParseConfig
	for _, o := range opts {
		o(&cfg)
	}
	tks, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		glob:   pattern,
		regex:  tks.toRegex(&cfg),
		cfg:    cfg,
		tokens: tks,
	}, nil
}

// Glob returns the original pattern text.
func (p *Pattern) Glob() string { return p.glob }

// Regex returns the anchored regex equivalent to the pattern.
func (p *Pattern) Regex() string { return p.regex }

func (p *Pattern) String() string { return p.glob }

// Literal returns the pattern text if and only if matching the pattern is
// equivalent to comparing the whole path with it. The pattern must consist
// of literals only.
func (p *Pattern) Literal() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	var lit strings.Builder
	for _, t := range p.tokens {
		c, ok := t.(literal)
		if !ok {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	if lit.Len() == 0 {
		return "", false
	}
	return lit.String(), true
}

// Ext returns an extension if the pattern matches a path if and only if the
// path has that extension. The extension includes the leading dot, so a
// basename like .rs counts as having extension .rs.
func (p *Pattern) Ext() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	if len(p.tokens) == 0 {
		return "", false
	}
	start := 0
	if _, ok := p.tokens[0].(recursivePrefix); ok {
		start = 1
	}
	t, ok := p.tokens.at(start)
	if !ok {
		return "", false
	}
	if _, isStar := t.(star); !isStar {
		return "", false
	}
	// Without a recursive prefix, the * has to be able to cross separators:
	// if * can't match /, then *.c doesn't match foo/bar.c.
	if start == 0 && p.cfg.literalSeparator {
		return "", false
	}
	t, ok = p.tokens.at(start + 1)
	if !ok {
		return "", false
	}
	if c, isLit := t.(literal); !isLit || c != '.' {
		return "", false
	}
	var lit strings.Builder
	lit.WriteByte('.')
	for _, t := range p.tokens[start+2:] {
		c, isLit := t.(literal)
		if !isLit || c == '.' || c == '/' {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}

// RequiredExt is like Ext, but returns an extension even when it isn't
// sufficient to imply a match - only necessary. The pattern just has to end
// with a literal .ext run containing no separator.
func (p *Pattern) RequiredExt() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	var ext []rune // built in reverse
	for i := len(p.tokens) - 1; i >= 0; i-- {
		c, isLit := p.tokens[i].(literal)
		if !isLit || c == '/' {
			return "", false
		}
		ext = append(ext, rune(c))
		if c == '.' {
			break
		}
	}
	if len(ext) == 0 || ext[len(ext)-1] != '.' {
		return "", false
	}
	for i, j := 0, len(ext)-1; i < j; i, j = i+1, j-1 {
		ext[i], ext[j] = ext[j], ext[i]
	}
	return string(ext), true
}

// Prefix returns a literal prefix of the pattern if the entire pattern
// matches whenever the prefix matches. The pattern must be a literal run,
// optionally ending in a single *.
func (p *Pattern) Prefix() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	end := len(p.tokens)
	if end > 0 {
		if _, ok := p.tokens[end-1].(star); ok {
			// A trailing * that can't cross a separator doesn't make the
			// prefix sufficient: with a literal separator, foo/* matches
			// foo/bar but not foo/bar/baz.
			if p.cfg.literalSeparator {
				return "", false
			}
			end--
		}
	}
	var lit strings.Builder
	for _, t := range p.tokens[:end] {
		c, ok := t.(literal)
		if !ok {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	if lit.Len() == 0 {
		return "", false
	}
	return lit.String(), true
}

// Suffix returns a literal suffix of the pattern if the entire pattern
// matches whenever the suffix matches. If component is true, the suffix
// starts with a separator and must match either immediately after a
// separator or against the entire path: **/foo/bar matches baz/foo/bar and
// the bare foo/bar, but not foofoo/bar.
func (p *Pattern) Suffix() (suffix string, component bool, ok bool) {
	if p.cfg.caseInsensitive {
		return "", false, false
	}
	var lit strings.Builder
	start := 0
	if t, found := p.tokens.at(0); found {
		if _, isRP := t.(recursivePrefix); isRP {
			start = 1
			// The suffix only pins to a component boundary if a literal
			// follows the recursive prefix directly.
			if t1, found := p.tokens.at(1); found {
				if _, isLit := t1.(literal); isLit {
					lit.WriteByte('/')
					component = true
				}
			}
		}
	}
	if t, found := p.tokens.at(start); found {
		if _, isStar := t.(star); isStar {
			// With a literal separator a * can't swallow arbitrary parent
			// components, so a suffix match would be a false positive.
			if p.cfg.literalSeparator {
				return "", false, false
			}
			start++
		}
	}
	for _, t := range p.tokens[start:] {
		c, isLit := t.(literal)
		if !isLit {
			return "", false, false
		}
		lit.WriteRune(rune(c))
	}
	suffix = lit.String()
	if suffix == "" || suffix == "/" {
		return "", false, false
	}
	return suffix, component, true
}

// IsOnlyBasename reports whether the pattern only inspects the basename of
// a path: a leading ** with no further separators or recursive tokens.
func (p *Pattern) IsOnlyBasename() bool {
	t, ok := p.tokens.at(0)
	if !ok {
		return false
	}
	if _, isRP := t.(recursivePrefix); !isRP {
		return false
	}
	for _, t := range p.tokens[1:] {
		switch t := t.(type) {
		case literal:
			if t == '/' || t == '\\' {
				return false
			}
		case recursivePrefix, recursiveSuffix, recursiveZeroOrMore:
			return false
		}
	}
	return true
}

// basenameTokens returns the tokens matching only the basename, when a
// basename match implies a whole-pattern match. That requires a leading **
// to gobble up the parent portion of the path, and nothing afterwards that
// could reach past the basename.
func (p *Pattern) basenameTokens() (tokens, bool) {
	if p.cfg.caseInsensitive {
		return nil, false
	}
	t, ok := p.tokens.at(0)
	if !ok {
		return nil, false
	}
	if _, isRP := t.(recursivePrefix); !isRP {
		return nil, false
	}
	rest := p.tokens[1:]
	if len(rest) == 0 {
		return nil, false
	}
	for _, t := range rest {
		switch t := t.(type) {
		case literal:
			if t == '/' || t == '\\' {
				return nil, false
			}
		case anyChar, star:
			// Without a literal separator these can match a / and escape
			// the basename.
			if !p.cfg.literalSeparator {
				return nil, false
			}
		case recursivePrefix, recursiveSuffix, recursiveZeroOrMore:
			return nil, false
		case charClass, alternates:
			// Could be smarter here, but either of these rules out the
			// literal optimisations anyway.
			return nil, false
		}
	}
	return rest, true
}

// BasenameLiteral returns the literal if the pattern is exactly **/ followed
// by a separator-free literal. Matching is then equality against the path's
// basename.
func (p *Pattern) BasenameLiteral() (string, bool) {
	tks, ok := p.basenameTokens()
	if !ok {
		return "", false
	}
	var lit strings.Builder
	for _, t := range tks {
		c, isLit := t.(literal)
		if !isLit {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}

// LiteralPrefix returns the literal run before a single trailing *, if that
// is the entire pattern.
func (p *Pattern) LiteralPrefix() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	if len(p.tokens) == 0 {
		return "", false
	}
	if _, ok := p.tokens[len(p.tokens)-1].(star); !ok {
		return "", false
	}
	var lit strings.Builder
	for _, t := range p.tokens[:len(p.tokens)-1] {
		c, ok := t.(literal)
		if !ok {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}

// LiteralSuffix returns the literal run after a leading **/ and optional *,
// if that is the entire pattern.
func (p *Pattern) LiteralSuffix() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	t, ok := p.tokens.at(0)
	if !ok {
		return "", false
	}
	if _, isRP := t.(recursivePrefix); !isRP {
		return "", false
	}
	start := 1
	if t, ok := p.tokens.at(1); ok {
		if _, isStar := t.(star); isStar {
			start = 2
		}
	}
	var lit strings.Builder
	for _, t := range p.tokens[start:] {
		c, ok := t.(literal)
		if !ok {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}

// BaseLiteralPrefix is LiteralPrefix restricted to the basename: a leading
// **/, a separator-free literal run, then a trailing *.
func (p *Pattern) BaseLiteralPrefix() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	t, ok := p.tokens.at(0)
	if !ok {
		return "", false
	}
	if _, isRP := t.(recursivePrefix); !isRP {
		return "", false
	}
	if _, isStar := p.tokens[len(p.tokens)-1].(star); !isStar {
		return "", false
	}
	var lit strings.Builder
	for _, t := range p.tokens[1 : len(p.tokens)-1] {
		c, isLit := t.(literal)
		if !isLit || c == '/' || c == '\\' {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}

// BaseLiteralSuffix is LiteralSuffix restricted to the basename: a leading
// **/ and *, then a separator-free literal run.
func (p *Pattern) BaseLiteralSuffix() (string, bool) {
	if p.cfg.caseInsensitive {
		return "", false
	}
	t, ok := p.tokens.at(0)
	if !ok {
		return "", false
	}
	if _, isRP := t.(recursivePrefix); !isRP {
		return "", false
	}
	t, ok = p.tokens.at(1)
	if !ok {
		return "", false
	}
	if _, isStar := t.(star); !isStar {
		return "", false
	}
	var lit strings.Builder
	for _, t := range p.tokens[2:] {
		c, isLit := t.(literal)
		if !isLit || c == '/' || c == '\\' {
			return "", false
		}
		lit.WriteRune(rune(c))
	}
	return lit.String(), true
}
