package sieve

/*

# A growable sieve of Eratosthenes

This package computes primes incrementally. A single engine, State, tracks
primality for [0, limit) and extends that range on demand. Two small iteration
strategies sit on top of it:

- Infinite: every prime, growing the sieve by doubling whenever the consumer
  asks for a prime past the frontier.
- Bounded: the primes strictly below a bound, sizing the sieve exactly once.

Both strategies hold their own State. They differ only in when they grow and
when they stop.

## Layout

	cell:        0 1 2 3 4 5 6 7 8 9 ...          limit-1 | limit ...
	composite:   1 1 0 0 1 0 1 0 1 1 ...                  | (unknown)
	primes:          2 3   5   7                          |

The composite cells are a growable LSB0 word bitset: cell j is bit j&63 of
word j>>6. A set bit means "known composite". Cells 0 and 1 are set by
convention.

## Growth

Growing from old to new only sieves the new cells [old, new):

 1. each known prime p with p*p < new strikes its multiples from
    max(p*p, first multiple of p >= old).
 2. the new cells are scanned left to right. Every clear cell found is prime;
    it is appended to the prime list and, if its square is below new, strikes
    its own multiples from its square.

Step 2 is correct because by the time a cell is reached, every prime smaller
than it has already struck the new region. The cells below old were fully
resolved by earlier growth, and no prime discovered later can have a multiple
there that is not also a multiple of a smaller prime. The total work across
any number of doubling steps is within a constant factor of sieving the final
range once.

Odd primes strike odd multiples only (stride 2p). That is the only wheel.

## Index types and overflow

The engine is generic over the unsigned integer type used for primes and
limits. A limit is bounded by both max(T) and the largest slice the platform
can address. Requests that need more return ErrOverflow. The maximum of every
unsigned Go integer type is 2^k-1, which is composite, so clamping the limit
to max(T) never loses a prime.

## Bounds

Bounded(n) is exclusive and yields primes < n, so Bounded(2) yields nothing
and Bounded(3) yields 2. UpTo(n) is inclusive and yields primes <= n, so
UpTo(2) yields 2. Both return a BoundedIterator; UpTo(n) is Bounded(n+1),
except at max(T) which is composite and needs no extra cell.

*/
