package sieve

import "errors"

const (
	// InitialGrowLimit is the limit used the first time an empty sieve has to
	// grow on demand. Subsequent on demand growth doubles the limit.
	InitialGrowLimit = 16

	// GrowthFactor is the multiplier applied to the limit by on demand growth.
	GrowthFactor = 2

	// wordBits is the number of cells held by a single bitset word.
	wordBits = 64
)

var (
	// ErrOverflow is returned when satisfying a request would need a limit
	// that the index type, or the addressable bitset, can not represent.
	ErrOverflow = errors.New("sieve: limit overflows the representable range")

	// ErrNegativeIndex is returned when a prime is requested by a negative
	// sequence index.
	ErrNegativeIndex = errors.New("sieve: prime index must not be negative")
)
