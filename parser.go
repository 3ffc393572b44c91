package globre

// parser is a single-lookahead cursor over the pattern's runes, plus a stack
// of token sequences. The stack has depth 1 except while inside a {...}
// group, where every branch seen so far holds its own sequence.
type parser struct {
	stack []tokens
	in    []rune
	pos   int

	cur    rune
	curOK  bool
	prev   rune
	prevOK bool
}

// parse converts a pattern into a token sequence.
func parse(pattern string) (tokens, error) {
	p := &parser{
		stack: []tokens{nil},
		in:    []rune(pattern),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	switch {
	case len(p.stack) == 0:
		return nil, ErrUnopenedAlternates
	case len(p.stack) > 1:
		return nil, ErrUnclosedAlternates
	}
	return p.stack[0], nil
}

func (p *parser) parse() error {
	for {
		c, ok := p.bump()
		if !ok {
			return nil
		}
		var err error
		switch c {
		case '?':
			err = p.pushToken(anyChar{})
		case '*':
			err = p.parseStar()
		case '[':
			err = p.parseClass()
		case '{':
			err = p.pushAlternate()
		case '}':
			err = p.popAlternate()
		case ',':
			err = p.parseComma()
		default:
			err = p.pushToken(literal(c))
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) pushAlternate() error {
	if len(p.stack) > 1 {
		return ErrNestedAlternates
	}
	p.stack = append(p.stack, nil)
	return nil
}

func (p *parser) popAlternate() error {
	var alts alternates
	for len(p.stack) >= 2 {
		last := len(p.stack) - 1
		alts = append(alts, p.stack[last])
		p.stack = p.stack[:last]
	}
	return p.pushToken(alts)
}

func (p *parser) pushToken(t token) error {
	if len(p.stack) == 0 {
		return ErrUnopenedAlternates
	}
	last := len(p.stack) - 1
	p.stack[last] = append(p.stack[last], t)
	return nil
}

func (p *parser) popToken() error {
	if len(p.stack) == 0 {
		return ErrUnopenedAlternates
	}
	last := len(p.stack) - 1
	seq := p.stack[last]
	p.stack[last] = seq[:len(seq)-1]
	return nil
}

func (p *parser) haveTokens() (bool, error) {
	if len(p.stack) == 0 {
		return false, ErrUnopenedAlternates
	}
	return len(p.stack[len(p.stack)-1]) > 0, nil
}

// parseComma treats a comma as a literal outside an alternation, and as a
// branch delimiter inside one.
func (p *parser) parseComma() error {
	if len(p.stack) <= 1 {
		return p.pushToken(literal(','))
	}
	p.stack = append(p.stack, nil)
	return nil
}

// parseStar is called with one * consumed. A lone * is ZeroOrMore; ** must
// form a whole path component: at the start of the pattern, at the end,
// flanked by separators, or standing alone as an alternation branch.
func (p *parser) parseStar() error {
	prev, prevOK := p.prev, p.prevOK
	if c, ok := p.peek(); !ok || c != '*' {
		return p.pushToken(star{})
	}
	p.bump()

	have, err := p.haveTokens()
	if err != nil {
		return err
	}
	if !have {
		if err := p.pushToken(recursivePrefix{}); err != nil {
			return err
		}
		if c, ok := p.bump(); ok && c != '/' {
			return ErrInvalidRecursive
		}
		return nil
	}

	// The preceding separator folds into the recursive token, which encodes
	// its own separators.
	if err := p.popToken(); err != nil {
		return err
	}
	if !prevOK || prev != '/' {
		if len(p.stack) <= 1 || !prevOK || (prev != ',' && prev != '{') {
			return ErrInvalidRecursive
		}
	}

	c, ok := p.peek()
	switch {
	case !ok:
		return p.pushToken(recursiveSuffix{})
	case (c == ',' || c == '}') && len(p.stack) >= 2:
		return p.pushToken(recursiveSuffix{})
	case c == '/':
		p.bump()
		return p.pushToken(recursiveZeroOrMore{})
	default:
		return ErrInvalidRecursive
	}
}

// parseClass is called with the [ consumed. A ] as the very first character
// is a literal; a - is a literal at the start or end of the class, and a
// range delimiter between two characters.
func (p *parser) parseClass() error {
	addToLastRange := func(r *classRange, add rune) error {
		r.hi = add
		if r.hi < r.lo {
			return &RangeError{Lo: r.lo, Hi: r.hi}
		}
		return nil
	}

	var negated bool
	var ranges []classRange
	if c, ok := p.peek(); ok && c == '!' {
		p.bump()
		negated = true
	}

	first := true
	inRange := false
loop:
	for {
		c, ok := p.bump()
		if !ok {
			// The only way out of this loop is a closing ].
			return ErrUnclosedClass
		}
		switch c {
		case ']':
			if !first {
				break loop
			}
			ranges = append(ranges, classRange{lo: ']', hi: ']'})

		case '-':
			switch {
			case first:
				ranges = append(ranges, classRange{lo: '-', hi: '-'})
			case inRange:
				// inRange is only set once at least one character has been
				// seen.
				if err := addToLastRange(&ranges[len(ranges)-1], '-'); err != nil {
					return err
				}
				inRange = false
			default:
				inRange = true
			}

		default:
			if inRange {
				if err := addToLastRange(&ranges[len(ranges)-1], c); err != nil {
					return err
				}
			} else {
				ranges = append(ranges, classRange{lo: c, hi: c})
			}
			inRange = false
		}
		first = false
	}
	if inRange {
		// The class ended with a dangling -, which is a literal.
		ranges = append(ranges, classRange{lo: '-', hi: '-'})
	}
	return p.pushToken(charClass{negated: negated, ranges: ranges})
}

func (p *parser) bump() (rune, bool) {
	p.prev, p.prevOK = p.cur, p.curOK
	if p.pos >= len(p.in) {
		p.cur, p.curOK = 0, false
		return 0, false
	}
	p.cur, p.curOK = p.in[p.pos], true
	p.pos++
	return p.cur, true
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.in) {
		return 0, false
	}
	return p.in[p.pos], true
}
