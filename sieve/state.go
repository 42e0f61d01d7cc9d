package sieve

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"golang.org/x/exp/constraints"
)

// State is a growable sieve of Eratosthenes over [0, Limit()).
//
// It owns the composite bitset and the ordered list of primes below the
// limit. The limit only ever increases. Each call that grows the sieve leaves
// every cell below the new limit fully resolved.
//
// A State is not safe for concurrent use. Each iterator exclusively owns its
// own State.
type State[T constraints.Unsigned] struct {
	log       logger.Logger
	limit     uint64
	composite bitset
	primes    []T
}

// NewState creates an empty sieve, or one pre-sized by WithInitialLimit.
func NewState[T constraints.Unsigned](opts ...Option) (*State[T], error) {
	o := NewOptions(opts...)
	s := &State[T]{log: o.log}
	if o.initialLimit == 0 {
		return s, nil
	}
	if o.initialLimit > MaxOf[T]() {
		return nil, fmt.Errorf(
			"%w: initial limit %d exceeds the index type maximum %d", ErrOverflow, o.initialLimit, MaxOf[T]())
	}
	if err := s.growTo(o.initialLimit); err != nil {
		return nil, err
	}
	return s, nil
}

// Limit returns the exclusive upper bound of the resolved range. This is the
// sieve frontier.
func (s *State[T]) Limit() T { return T(s.limit) }

// Len returns the number of primes below Limit().
func (s *State[T]) Len() int { return len(s.primes) }

// Primes returns the primes below Limit() in increasing order. The result is
// a view of the sieve's storage, clipped so that appending to it can not
// disturb the sieve.
func (s *State[T]) Primes() []T { return s.primes[:len(s.primes):len(s.primes)] }

// IsComposite reports whether k is known not to be prime. 0 and 1 report
// true.
//
// The caller must ensure k < Limit(). The result for larger k is meaningless.
func (s *State[T]) IsComposite(k T) bool {
	return s.composite.has(uint64(k))
}

// IsPrime is the complement of IsComposite, with the same precondition.
func (s *State[T]) IsPrime(k T) bool {
	return !s.composite.has(uint64(k))
}

// Size returns the number of bytes currently reserved by the bitset and the
// prime list.
func (s *State[T]) Size() uint64 {
	width := uint64(bits.Len64(MaxOf[T]()) / 8)
	return s.composite.bytes() + uint64(cap(s.primes))*width
}

// GrowTo extends the sieve so that primality of [0, newLimit) is resolved.
//
// Growing to a limit at or below the current one is a no-op. Previously found
// primes are kept, only the newly added cells are sieved.
func (s *State[T]) GrowTo(newLimit T) error {
	return s.growTo(uint64(newLimit))
}

// NthPrimeOrGrow returns the prime at the zero based index in the sequence of
// all primes, growing the sieve as many times as needed. Growth doubles the
// limit, starting from InitialGrowLimit, and is clamped to the largest limit
// the index type can hold.
func (s *State[T]) NthPrimeOrGrow(index int) (T, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeIndex, index)
	}
	ceiling := maxCells[T]()
	for len(s.primes) <= index {
		next, ok := nextGrowLimit(s.limit, ceiling)
		if !ok {
			if s.log != nil {
				s.log.Infof("sieve: prime index %d not reachable, %d primes below ceiling %d", index, len(s.primes), ceiling)
			}
			return 0, fmt.Errorf(
				"%w: prime index %d is past the %d primes below %d", ErrOverflow, index, len(s.primes), s.limit)
		}
		if err := s.growTo(next); err != nil {
			return 0, err
		}
	}
	return s.primes[index], nil
}

// PrimesBelow returns every prime strictly less than bound, growing the sieve
// at most once. The result is a clipped view of the sieve's storage.
func (s *State[T]) PrimesBelow(bound T) ([]T, error) {
	if s.limit < uint64(bound) {
		if err := s.growTo(uint64(bound)); err != nil {
			return nil, err
		}
	}
	n, _ := slices.BinarySearch(s.primes, bound)
	return s.primes[:n:n], nil
}

func (s *State[T]) growTo(newLimit uint64) error {
	old := s.limit
	if newLimit <= old {
		return nil
	}
	if ceiling := maxCells[T](); newLimit > ceiling {
		if s.log != nil {
			s.log.Infof("sieve: refusing to grow to %d, ceiling is %d", newLimit, ceiling)
		}
		return fmt.Errorf("%w: limit %d exceeds %d addressable cells", ErrOverflow, newLimit, ceiling)
	}

	s.composite.grow(newLimit)

	// 0 and 1 are not prime.
	for j := old; j < min(2, newLimit); j++ {
		s.composite.set(j)
	}

	// Only primes p with p*p < newLimit strike anything.
	root := ISqrt(newLimit - 1)

	for _, p := range s.primes {
		pp := uint64(p)
		if pp > root {
			break
		}
		s.composite.strike(firstMultiple(pp, old), stride(pp), newLimit)
	}

	// A clear cell reached by this scan is prime: every prime below it has
	// already struck its multiples in [old, newLimit).
	for j := s.composite.nextClear(old, newLimit); j < newLimit; j = s.composite.nextClear(j+1, newLimit) {
		s.primes = append(s.primes, T(j))
		if j <= root {
			s.composite.strike(j*j, stride(j), newLimit)
		}
	}

	s.limit = newLimit
	if s.log != nil {
		s.log.Debugf("sieve: grew %d -> %d, %d primes", old, newLimit, len(s.primes))
	}
	return nil
}

// firstMultiple returns the first multiple of p at or above both p*p and
// from. For odd p the result is odd, so that stride can skip even multiples.
func firstMultiple(p, from uint64) uint64 {
	m := p * p
	if m < from {
		m = (from + p - 1) / p * p
	}
	if p != 2 && m&1 == 0 {
		m += p
	}
	return m
}

// stride is the distance between the multiples of p that need striking. Even
// multiples of an odd prime are already struck by 2.
func stride(p uint64) uint64 {
	if p == 2 {
		return 2
	}
	return 2 * p
}
