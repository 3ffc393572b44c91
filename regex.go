package globre

import (
	"regexp"
	"strings"
)

// sepClass is the separator set escaped for use inside a regex character
// class.
const sepClass = `/\\`

// toRegex renders the token sequence as an anchored regex for the stdlib
// regexp engine. The (?s) prologue makes . match every byte of the path,
// newlines included - paths are raw bytes, not lines of text.
func (ts tokens) toRegex(cfg *parseConfig) string {
	var re strings.Builder
	re.WriteString("(?s)")
	if cfg.caseInsensitive {
		re.WriteString("(?i)")
	}
	re.WriteString("^")
	// Special case. A pattern that is entirely ** matches everything.
	if len(ts) == 1 {
		if _, ok := ts[0].(recursivePrefix); ok {
			re.WriteString(".*$")
			return re.String()
		}
	}
	ts.writeRegex(cfg, &re)
	re.WriteString("$")
	return re.String()
}

func (ts tokens) writeRegex(cfg *parseConfig, re *strings.Builder) {
	for _, t := range ts {
		switch t := t.(type) {
		case literal:
			re.WriteString(regexp.QuoteMeta(string(t)))

		case anyChar:
			if cfg.literalSeparator {
				re.WriteString("[^" + sepClass + "]")
			} else {
				re.WriteString(".")
			}

		case star:
			if cfg.literalSeparator {
				re.WriteString("[^" + sepClass + "]*")
			} else {
				re.WriteString(".*")
			}

		case recursivePrefix:
			// An empty prefix, or anything ending in a separator.
			re.WriteString("(?:[" + sepClass + "]?|.*[" + sepClass + "])")

		case recursiveSuffix:
			// An empty suffix, or a separator followed by anything.
			re.WriteString("(?:[" + sepClass + "]?|[" + sepClass + "].*)")

		case recursiveZeroOrMore:
			// One separator, or a separator-delimited run of components.
			re.WriteString("(?:[" + sepClass + "]|[" + sepClass + "].*[" + sepClass + "])")

		case charClass:
			re.WriteByte('[')
			if t.negated {
				re.WriteByte('^')
			}
			for _, r := range t.ranges {
				if r.lo == r.hi {
					// Not strictly necessary, but nicer to look at.
					re.WriteString(regexp.QuoteMeta(string(r.lo)))
				} else {
					re.WriteString(regexp.QuoteMeta(string(r.lo)))
					re.WriteByte('-')
					re.WriteString(regexp.QuoteMeta(string(r.hi)))
				}
			}
			re.WriteByte(']')

		case alternates:
			parts := make([]string, 0, len(t))
			for _, seq := range t {
				var alt strings.Builder
				seq.writeRegex(cfg, &alt)
				parts = append(parts, alt.String())
			}
			// Grouped so the anchors and neighbouring tokens don't leak into
			// the branches.
			re.WriteString("(?:" + strings.Join(parts, "|") + ")")
		}
	}
}
