package sievetesting

import "golang.org/x/exp/constraints"

// FirstHundredPrimes are the first 100 primes, the last being 541.
var FirstHundredPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79,
	83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151, 157, 163, 167,
	173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233, 239, 241, 251, 257,
	263, 269, 271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337, 347, 349, 353,
	359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449,
	457, 461, 463, 467, 479, 487, 491, 499, 503, 509, 521, 523, 541,
}

// IsPrime decides primality by trial division. It is slow and obviously
// correct, which is what the sieve tests want from it.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimesBelow returns the primes < bound by trial division.
func PrimesBelow(bound uint64) []uint64 {
	var out []uint64
	for n := uint64(2); n < bound; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

// Widen converts a slice of any unsigned prime type to []uint64 for
// comparison against the oracle.
func Widen[T constraints.Unsigned](in []T) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = uint64(v)
	}
	return out
}
