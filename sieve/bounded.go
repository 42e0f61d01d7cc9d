package sieve

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// BoundedIterator yields the primes strictly below a fixed bound.
//
// The bound is exclusive: Bounded(30) yields 2 .. 29 and Bounded(29) stops at
// 23. Use UpTo for an inclusive bound.
//
// The sieve is sized once, at construction, to exactly the bound, so memory
// use is proportional to the bound and Next never grows the sieve.
type BoundedIterator[T constraints.Unsigned] struct {
	state  *State[T]
	bound  T
	primes []T
	k      int
	value  T
	err    error
}

var _ Iterator[uint64] = (*BoundedIterator[uint64])(nil)

// Bounded returns an iterator over the primes below limit. Bounds of 0 and 1
// are valid and yield nothing.
//
// A bound the platform can not address is reported by Err, and the iterator
// is exhausted from the start.
func Bounded[T constraints.Unsigned](limit T, opts ...Option) *BoundedIterator[T] {
	it := &BoundedIterator[T]{bound: limit}
	it.state, it.err = NewState[T](opts...)
	if it.err != nil {
		return it
	}
	it.primes, it.err = it.state.PrimesBelow(limit)
	return it
}

// UpTo returns an iterator over the primes less than or equal to n. UpTo(2)
// yields 2.
func UpTo[T constraints.Unsigned](n T, opts ...Option) *BoundedIterator[T] {
	if uint64(n) < MaxOf[T]() {
		return Bounded(n+1, opts...)
	}
	// max(T) is 2^k-1, never prime, so primes below it are primes up to it.
	return Bounded(n, opts...)
}

// Next advances to the next prime below the bound.
func (it *BoundedIterator[T]) Next() bool {
	if it.k >= len(it.primes) {
		return false
	}
	it.value = it.primes[it.k]
	it.k++
	return true
}

func (it *BoundedIterator[T]) Value() T   { return it.value }
func (it *BoundedIterator[T]) Err() error { return it.err }

// Bound returns the exclusive upper bound the iterator was constructed with.
func (it *BoundedIterator[T]) Bound() T { return it.bound }

// Count returns the total number of primes the iterator yields, which is
// pi(bound).
func (it *BoundedIterator[T]) Count() int { return len(it.primes) }

// Remaining returns the number of primes not yet produced.
func (it *BoundedIterator[T]) Remaining() int { return len(it.primes) - it.k }

// Exhausted reports whether every prime below the bound has been produced.
func (it *BoundedIterator[T]) Exhausted() bool { return it.k >= len(it.primes) }

// Frontier returns the sieve limit. Once constructed this is
// max(bound, initial limit).
func (it *BoundedIterator[T]) Frontier() T {
	if it.state == nil {
		return 0
	}
	return it.state.Limit()
}

// All is Seq(it).
func (it *BoundedIterator[T]) All() iter.Seq[T] { return Seq[T](it) }
