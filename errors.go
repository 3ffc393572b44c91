package globre

import (
	"errors"
	"fmt"
)

// Errors reported while parsing a pattern. They are pure functions of the
// pattern text - the same pattern always fails the same way.
var (
	// ErrUnclosedClass means a character class was missing its closing ].
	ErrUnclosedClass = errors.New("unclosed character class - missing closing square bracket")

	// ErrInvalidRecursive means ** appeared somewhere other than as a whole
	// path component (the start or end of the pattern, between two
	// separators, or as an entire alternation branch).
	ErrInvalidRecursive = errors.New("invalid use of ** - must form a whole path component")

	// ErrUnopenedAlternates means an alternation was closed without being
	// opened.
	ErrUnopenedAlternates = errors.New("unopened alternation - missing opening brace")

	// ErrUnclosedAlternates means an alternation was opened without being
	// closed.
	ErrUnclosedAlternates = errors.New("unterminated alternation - missing closing brace")

	// ErrNestedAlternates means an alternation was opened inside another
	// alternation.
	ErrNestedAlternates = errors.New("nested alternation - alternations cannot contain alternations")
)

// RangeError reports a character class range whose end sorts before its
// start, such as [z-a].
type RangeError struct {
	Lo, Hi rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid character range %c-%c", e.Lo, e.Hi)
}

// Is supports errors.Is comparison against another *RangeError.
func (e *RangeError) Is(target error) bool {
	t, ok := target.(*RangeError)
	return ok && *e == *t
}
