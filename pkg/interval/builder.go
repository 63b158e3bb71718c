package interval

import (
	"errors"
	"fmt"
)

// Builder collects ranges for a Set. Bad input is recorded and skipped, so a
// single call to Set reports every problem at once. The zero value is ready
// to use.
type Builder struct {
	in   []Range
	errs error
}

// AddRange adds r to the builder.
func (b *Builder) AddRange(r Range) {
	if !r.IsValid() {
		b.errs = errors.Join(b.errs, &InvalidRangeError{From: r.From, To: r.To})
		return
	}
	b.in = append(b.in, r)
}

// Add adds [from, to].
func (b *Builder) Add(from, to uint64) {
	b.AddRange(Range{From: from, To: to})
}

// AddString parses s with ParseRange and adds the result.
func (b *Builder) AddString(s string) {
	r, err := ParseRange(s)
	if err != nil {
		b.errs = errors.Join(b.errs, err)
		return
	}
	b.in = append(b.in, r)
}

// AddSet adds all ranges of set.
func (b *Builder) AddSet(set *Set) {
	if set == nil {
		return
	}
	b.in = append(b.in, set.rr...)
}

// Set returns the set of all valid ranges added so far, together with the
// joined errors of the invalid ones. The builder is reset.
func (b *Builder) Set() (*Set, error) {
	set := Build(b.in)
	errs := b.errs
	b.in, b.errs = nil, nil
	return set, errs
}

// ParseRanges builds a set from range text, one range per entry.
func ParseRanges(ss []string) (*Set, error) {
	var b Builder
	for _, s := range ss {
		b.AddString(s)
	}
	set, err := b.Set()
	if err != nil {
		return set, fmt.Errorf("parse ranges: %w", err)
	}
	return set, nil
}
