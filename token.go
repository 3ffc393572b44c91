package globre

// AST tokens. A pattern parses to an ordered sequence of these; an
// alternation nests whole sequences inside a single token.
type (
	// literal matches exactly this rune.
	literal rune

	// anyChar matches exactly one rune (?).
	anyChar struct{}

	// star matches zero or more runes (*).
	star struct{}

	// recursivePrefix is ** at the start of a pattern: zero or more whole
	// leading path components.
	recursivePrefix struct{}

	// recursiveSuffix is ** at the end of a pattern: zero or more whole
	// trailing components.
	recursiveSuffix struct{}

	// recursiveZeroOrMore is ** between two separators: zero or more whole
	// interior components.
	recursiveZeroOrMore struct{}

	// charClass is a bracket expression. Ranges keep insertion order and may
	// overlap; a single character is a range with lo == hi.
	charClass struct {
		negated bool
		ranges  []classRange
	}

	// alternates is a brace group {a,b,c}. Each member is a full token
	// sequence.
	alternates []tokens
)

type classRange struct {
	lo, hi rune
}

func (literal) tokenTag()             {}
func (anyChar) tokenTag()             {}
func (star) tokenTag()                {}
func (recursivePrefix) tokenTag()     {}
func (recursiveSuffix) tokenTag()     {}
func (recursiveZeroOrMore) tokenTag() {}
func (charClass) tokenTag()           {}
func (alternates) tokenTag()          {}

type token interface{ tokenTag() }

type tokens []token

// at is a bounds-checked index.
func (ts tokens) at(i int) (token, bool) {
	if i < 0 || i >= len(ts) {
		return nil, false
	}
	return ts[i], true
}
