package interval

import "math/bits"

type myuint64 uint64

// addOne returns u + 1 and whether the addition wrapped past MaxUint64.
func (u myuint64) addOne() (myuint64, bool) {
	lo, carry := bits.Add64(uint64(u), 1, 0)
	return myuint64(lo), carry != 0
}

// add returns u + m, saturating at MaxUint64.
func (u myuint64) add(m myuint64) myuint64 {
	lo, carry := bits.Add64(uint64(u), uint64(m), 0)
	if carry != 0 {
		return myuint64(^uint64(0))
	}
	return myuint64(lo)
}

// touches reports whether a range ending at u is adjacent to or overlaps a
// range starting at from, i.e. u+1 >= from without wrapping.
func (u myuint64) touches(from uint64) bool {
	next, overflow := u.addOne()
	if overflow {
		return true
	}
	return uint64(next) >= from
}
