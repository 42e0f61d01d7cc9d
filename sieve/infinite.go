package sieve

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// InfiniteIterator yields every prime in increasing order, growing its sieve
// whenever the cursor passes the frontier.
//
// Most calls to Next are a slice lookup. The call that crosses the frontier
// pays for sieving the doubled range, so latency is uneven.
//
// The sequence only ends if the index type can not hold the next prime, in
// which case Err returns ErrOverflow.
type InfiniteIterator[T constraints.Unsigned] struct {
	state *State[T]
	k     int
	value T
	err   error
}

var _ Iterator[uint64] = (*InfiniteIterator[uint64])(nil)

// Infinite returns an iterator over all primes representable by T, starting
// from an empty sieve.
func Infinite[T constraints.Unsigned](opts ...Option) *InfiniteIterator[T] {
	s, err := NewState[T](opts...)
	return &InfiniteIterator[T]{state: s, err: err}
}

// Next advances to the next prime.
func (it *InfiniteIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	p, err := it.state.NthPrimeOrGrow(it.k)
	if err != nil {
		it.err = err
		return false
	}
	it.k++
	it.value = p
	return true
}

func (it *InfiniteIterator[T]) Value() T   { return it.value }
func (it *InfiniteIterator[T]) Err() error { return it.err }

// Index returns the number of primes produced so far.
func (it *InfiniteIterator[T]) Index() int { return it.k }

// Frontier returns the current sieve limit.
func (it *InfiniteIterator[T]) Frontier() T {
	if it.state == nil {
		return 0
	}
	return it.state.Limit()
}

// All is Seq(it).
func (it *InfiniteIterator[T]) All() iter.Seq[T] { return Seq[T](it) }
