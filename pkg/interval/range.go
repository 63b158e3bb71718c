package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a closed interval [From, To] of uint64 IDs. The zero value is the
// single ID 0.
type Range struct {
	From uint64
	To   uint64
}

// NewRange returns the range [from, to].
func NewRange(from, to uint64) (Range, error) {
	if from > to {
		return Range{}, &InvalidRangeError{From: from, To: to}
	}
	return Range{From: from, To: to}, nil
}

// MustRange is like NewRange but panics on an invalid range.
func MustRange(from, to uint64) Range {
	r, err := NewRange(from, to)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRange parses "<from>-<to>" where both bounds are decimal uint64.
func ParseRange(s string) (Range, error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return Range{}, &ParseError{Input: s, Err: ErrNoSeparator}
	}
	from, to := s[:h], s[h+1:]
	fromID, err := strconv.ParseUint(from, 10, 64)
	if err != nil {
		return Range{}, &ParseError{Input: s, Err: fmt.Errorf("invalid from id %q: %w", from, err)}
	}
	toID, err := strconv.ParseUint(to, 10, 64)
	if err != nil {
		return Range{}, &ParseError{Input: s, Err: fmt.Errorf("invalid to id %q: %w", to, err)}
	}
	r, err := NewRange(fromID, toID)
	if err != nil {
		return Range{}, &ParseError{Input: s, Err: err}
	}
	return r, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// IsValid reports whether From <= To.
func (r Range) IsValid() bool { return r.From <= r.To }

// Contains reports whether id lies within r.
func (r Range) Contains(id uint64) bool {
	return r.From <= id && id <= r.To
}

// Size returns the number of IDs in r. The full uint64 domain has one more
// ID than a uint64 can count and saturates at MaxUint64.
func (r Range) Size() uint64 {
	return uint64(myuint64(r.To - r.From).add(1))
}

// Less orders ranges by From, then by To.
func (r Range) Less(other Range) bool {
	if r.From != other.From {
		return r.From < other.From
	}
	return r.To < other.To
}

// EntirelyBefore reports whether r ends before other starts.
func (r Range) EntirelyBefore(other Range) bool {
	return r.To < other.From
}

// Combine merges r and other when they overlap or touch. The order of the
// operands does not matter. ok is false when a gap of at least one ID
// separates them.
func (r Range) Combine(other Range) (merged Range, ok bool) {
	left, right := r, other
	if right.From < left.From {
		left, right = right, left
	}
	if !myuint64(left.To).touches(right.From) {
		return Range{}, false
	}
	return Range{From: left.From, To: max(left.To, right.To)}, true
}
