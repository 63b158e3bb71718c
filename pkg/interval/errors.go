package interval

import (
	"errors"
	"fmt"
)

// ErrNoSeparator is returned when range text has no hyphen.
var ErrNoSeparator = errors.New("no hyphen in range")

// ParseError reports malformed range text. Err holds the underlying cause:
// ErrNoSeparator, a *strconv.NumError or an *InvalidRangeError.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid range %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidRangeError is returned when the lower bound exceeds the upper bound.
type InvalidRangeError struct {
	From, To uint64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("range from %d is bigger then to %d", e.From, e.To)
}
