package solver

import "math/bits"

// Falling-factorial coefficient tables for encodePerm: coefN[i] =
// N·(N-1)·…·(N-i+1). Compile-time constants of the group structure.
var (
	coef4  = [4]int{1, 4, 12, 24}
	coef8  = [8]int{1, 8, 56, 336, 1680, 6720, 20160, 40320}
	coef12 = [12]int{1, 12, 132, 1320, 11880, 95040, 665280, 3991680,
		19958400, 79833600, 239500800, 479001600}
)

// encodePerm maps the first s entries of p (distinct values in [0,n))
// to an integer in [0, n·(n-1)·…·(n-s+1)). coef must be the matching
// falling-factorial table. The bijection is a mixed-radix rank: element
// p[i] contributes its rank among the not-yet-consumed values, counted
// from a bitmask of consumed values so each step is O(1).
func encodePerm(p []int8, n, s int, coef []int) int {
	var used uint16
	v := 0
	for i := 0; i < s; i++ {
		x := uint(p[i])
		rank := int(x) - bits.OnesCount16(used&(1<<x-1))
		v += coef[i] * rank
		used |= 1 << x
	}
	return v
}
