package globre

// MatchStrategy is the cheapest known way to decide whether a pattern
// matches a path. A multi-pattern engine uses it to sort patterns into
// buckets - for example, every *.ext pattern collapses into a single
// extension lookup - instead of running one regex per pattern. Every
// string test expects the path to have been through NormalizePath.
type MatchStrategy interface{ matchStrategy() }

type (
	// LiteralStrategy matches if the whole path equals the literal.
	LiteralStrategy string

	// BasenameLiteralStrategy matches if the path's basename equals the
	// literal.
	BasenameLiteralStrategy string

	// ExtensionStrategy matches if the path's extension equals this one.
	// The extension includes the leading dot.
	ExtensionStrategy string

	// PrefixStrategy matches if the path starts with the literal.
	PrefixStrategy string

	// SuffixStrategy matches if the path ends with Suffix. If Component is
	// set, Suffix starts with a separator, and an exact match of the suffix
	// with that separator stripped against the entire path also counts (so
	// **/foo matches a bare foo).
	SuffixStrategy struct {
		Suffix    string
		Component bool
	}

	// RequiredExtensionStrategy matches only if the path's extension equals
	// this one, and even then the full regex must confirm the match. It is
	// a fast rejection, not a fast acceptance.
	RequiredExtensionStrategy string

	// RegexStrategy means no shortcut applies; evaluate the regex.
	RegexStrategy struct{}
)

func (LiteralStrategy) matchStrategy()           {}
func (BasenameLiteralStrategy) matchStrategy()   {}
func (ExtensionStrategy) matchStrategy()         {}
func (PrefixStrategy) matchStrategy()            {}
func (SuffixStrategy) matchStrategy()            {}
func (RequiredExtensionStrategy) matchStrategy() {}
func (RegexStrategy) matchStrategy()             {}

// NewMatchStrategy picks the best available shortcut for the pattern,
// falling back to the regex when no extraction applies.
func NewMatchStrategy(p *Pattern) MatchStrategy {
	if lit, ok := p.BasenameLiteral(); ok {
		return BasenameLiteralStrategy(lit)
	}
	if lit, ok := p.Literal(); ok {
		return LiteralStrategy(lit)
	}
	if ext, ok := p.Ext(); ok {
		return ExtensionStrategy(ext)
	}
	if prefix, ok := p.Prefix(); ok {
		return PrefixStrategy(prefix)
	}
	if suffix, component, ok := p.Suffix(); ok {
		return SuffixStrategy{Suffix: suffix, Component: component}
	}
	if ext, ok := p.RequiredExt(); ok {
		return RequiredExtensionStrategy(ext)
	}
	return RegexStrategy{}
}
