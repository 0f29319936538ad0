package mathx

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// LowBit returns the index of the lowest set bit of m, or -1 when m is zero.
func LowBit[T constraints.Unsigned](m T) int {
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(m))
}

// Ones returns the number of set bits in m.
func Ones[T constraints.Unsigned](m T) int {
	return bits.OnesCount64(uint64(m))
}

// Contiguous reports whether the set bits of m form a single run.
// Zero is not contiguous.
func Contiguous[T constraints.Unsigned](m T) bool {
	if m == 0 {
		return false
	}
	m >>= uint(LowBit(m))
	return m&(m+1) == 0
}

// FitsIn reports whether v can be represented in width bits.
func FitsIn[T constraints.Unsigned](v T, width int) bool {
	if width <= 0 {
		return v == 0
	}
	if width >= 64 {
		return true
	}
	return uint64(v)>>uint(width) == 0
}
