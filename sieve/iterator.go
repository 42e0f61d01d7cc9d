package sieve

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator is the pull contract shared by the infinite and bounded strategies.
//
// The usual usage is:
//
//	it := sieve.Infinite[uint32]()
//	for it.Next() {
//		p := it.Value()
//		... use p, or break ...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Value must only be called after a call to Next has returned true. Once Next
// returns false it keeps returning false; construct a new iterator to start
// again.
type Iterator[T constraints.Unsigned] interface {
	Next() bool
	Value() T
	Err() error
}

// Seq adapts it to a range-over-func sequence. Iteration errors are still
// reported by it.Err once the sequence stops.
func Seq[T constraints.Unsigned](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Take returns up to n values from it. Fewer are returned if the iterator is
// exhausted or fails, in which case the failure is returned with the values
// produced so far.
func Take[T constraints.Unsigned](it Iterator[T], n int) ([]T, error) {
	out := make([]T, 0, max(n, 0))
	for len(out) < n && it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

// Collect drains it. Calling Collect on an infinite iterator only returns
// once the index type is exhausted.
func Collect[T constraints.Unsigned](it Iterator[T]) ([]T, error) {
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}
