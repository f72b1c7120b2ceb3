package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is matched by every error returned from Parse.
var ErrInvalidColor = errors.New("invalid color")

// acceptedFormats is appended to every parse failure so callers can show
// actionable feedback.
const acceptedFormats = `expected hex (#6c5ce7, 6c5ce7, #6ce), rgb(108, 92, 231) or hsl(247, 74%, 63%)`

// ParseError reports text that matched none of the accepted color grammars.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, acceptedFormats)
}

// Unwrap lets errors.Is(err, ErrInvalidColor) match.
func (e *ParseError) Unwrap() error {
	return ErrInvalidColor
}
