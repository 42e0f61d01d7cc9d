package sieve

import "math/bits"

// bitset is a growable LSB0 bit array: cell j lives in word j>>6 at bit j&63.
//
// A set bit means the cell is known composite. Growing never disturbs existing
// cells and always exposes new cells as clear.
type bitset struct {
	words []uint64
	n     uint64
}

func wordsFor(n uint64) uint64 {
	return (n + wordBits - 1) / wordBits
}

// grow extends the bitset to n cells. It is a no-op if n <= len.
//
// The backing array is extended in place when capacity allows, otherwise it is
// reallocated with append's amortized policy.
func (b *bitset) grow(n uint64) {
	if n <= b.n {
		return
	}
	need := int(wordsFor(n))
	if need > len(b.words) {
		if need <= cap(b.words) {
			old := len(b.words)
			b.words = b.words[:need]
			clear(b.words[old:])
		} else {
			b.words = append(b.words, make([]uint64, need-len(b.words))...)
		}
	}
	b.n = n
}

func (b *bitset) len() uint64 { return b.n }

func (b *bitset) set(j uint64) {
	b.words[j>>6] |= 1 << (j & 63)
}

func (b *bitset) has(j uint64) bool {
	return b.words[j>>6]&(1<<(j&63)) != 0
}

// strike sets every cell start, start+step, ... below end.
//
// The caller guarantees end <= len and that start+step can not wrap.
func (b *bitset) strike(start, step, end uint64) {
	for j := start; j < end; j += step {
		b.words[j>>6] |= 1 << (j & 63)
	}
}

// nextClear returns the first clear cell in [from, end), or end if every cell
// in the range is set.
func (b *bitset) nextClear(from, end uint64) uint64 {
	if from >= end {
		return end
	}
	wi := from >> 6
	w := ^b.words[wi] &^ (1<<(from&63) - 1)
	for {
		if w != 0 {
			j := wi<<6 + uint64(bits.TrailingZeros64(w))
			if j >= end {
				return end
			}
			return j
		}
		wi++
		if wi<<6 >= end {
			return end
		}
		w = ^b.words[wi]
	}
}

// bytes reports the size of the backing storage in bytes.
func (b *bitset) bytes() uint64 {
	return uint64(cap(b.words)) * 8
}
