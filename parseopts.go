package globre

var defaultParseConfig = parseConfig{}

type parseConfig struct {
	caseInsensitive  bool
	literalSeparator bool
}

// ParseOption functions optionally alter how patterns are parsed and
// matched.
type ParseOption = func(*parseConfig)

// CaseInsensitive changes whether the pattern matches case insensitively.
// Disabled by default. Enabling it also disables every extraction shortcut,
// since none of them account for case folding.
func CaseInsensitive(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.caseInsensitive = enable
	}
}

// LiteralSeparator changes whether a literal separator is required to match
// a path separator. If enabled, * and ? refuse to match / (and \).
// Disabled by default.
func LiteralSeparator(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.literalSeparator = enable
	}
}
