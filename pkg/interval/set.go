package interval

import (
	"sort"
	"strings"
)

// Set is an immutable set of uint64 IDs.
type Set struct {
	// rr is sorted ascending by From, with no overlapping and no
	// adjacent ranges: rr[i].To+1 < rr[i+1].From. Contains relies on it.
	rr []Range
}

// Build returns the minimal set covering every range in rr. rr may be in any
// order and may contain duplicates or overlaps; it is not modified. Ranges
// with From > To are ignored, use a Builder to have them reported.
func Build(rr []Range) *Set {
	return &Set{rr: mergeRanges(rr)}
}

// mergeRanges returns the minimum and sorted set of ranges that cover rr.
func mergeRanges(rr []Range) []Range {
	// Always work on a copy, to avoid aliasing slice memory in the caller.
	sorted := make([]Range, 0, len(rr))
	for _, r := range rr {
		if r.IsValid() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if merged, ok := cur.Combine(r); ok {
			//   cur
			// f------t
			//     f-----t
			//        r
			cur = merged
			continue
		}
		//   cur       r
		// f------t  f-----t
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}

// Contains reports whether id is in s.
func (s *Set) Contains(id uint64) bool {
	low, high := 0, len(s.rr)
	for low < high {
		mid := int(uint(low+high) >> 1)
		r := s.rr[mid]
		switch {
		case r.Contains(id):
			return true
		case id < r.From:
			high = mid
		default:
			low = mid + 1
		}
	}
	return false
}

// Len returns the number of ranges in the minimal representation of s.
func (s *Set) Len() int { return len(s.rr) }

// Ranges returns the minimum and sorted set of ranges that covers s.
func (s *Set) Ranges() []Range {
	return append([]Range{}, s.rr...)
}

// Size returns the number of IDs in s, saturating at MaxUint64.
func (s *Set) Size() uint64 {
	var total myuint64
	for _, r := range s.rr {
		total = total.add(myuint64(r.Size()))
	}
	return uint64(total)
}

func (s *Set) String() string {
	parts := make([]string, 0, len(s.rr))
	for _, r := range s.rr {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}
