package sieve

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ISqrt returns floor(sqrt(n)).
//
// The float estimate is corrected in both directions so the result is exact
// across the full uint64 range. Comparisons are made by division to avoid
// overflowing r*r.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// MaxOf returns the largest value representable by T, widened to uint64.
func MaxOf[T constraints.Unsigned]() uint64 {
	return uint64(^T(0))
}

// maxCells is the largest number of cells the bitset can address. It is the
// smaller of the index type range and the platform slice index range.
func maxCells[T constraints.Unsigned]() uint64 {
	return min(MaxOf[T](), uint64(math.MaxInt))
}

// nextGrowLimit returns the limit on demand growth should move to from limit,
// or ok=false if limit is already at ceiling.
func nextGrowLimit(limit, ceiling uint64) (uint64, bool) {
	if limit >= ceiling {
		return 0, false
	}
	if limit < InitialGrowLimit/GrowthFactor {
		return min(InitialGrowLimit, ceiling), true
	}
	if limit > ceiling/GrowthFactor {
		return ceiling, true
	}
	return limit * GrowthFactor, true
}
