package numtheory

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// sieveLimit bounds the cached sieve of Eratosthenes. Trial division walks
// the sieved primes first; candidates above the limit are enumerated as odd
// numbers, which is correct because all smaller prime factors have already
// been divided out.
const sieveLimit = 1 << 16

var smallPrimes = sync.OnceValue(func() []int64 {
	return SmallPrimes(sieveLimit)
})

// SmallPrimes returns all primes <= limit in increasing order, using a sieve
// of Eratosthenes over a bitset.
func SmallPrimes(limit uint) []int64 {
	if limit < 2 {
		return nil
	}

	composite := bitset.New(limit + 1)
	for p := uint(2); p*p <= limit; p++ {
		if composite.Test(p) {
			continue
		}
		for q := p * p; q <= limit; q += p {
			composite.Set(q)
		}
	}

	primes := make([]int64, 0, limit/2)
	for p := uint(2); p <= limit; p++ {
		if !composite.Test(p) {
			primes = append(primes, int64(p))
		}
	}
	return primes
}

// Factors returns the prime factorization of |n| as a non-decreasing slice of
// primes with multiplicity, so that their product equals |n|. Runs in O(sqrt n)
// divisions: trial division stops once d*d > n and the remaining cofactor, if
// greater than one, is itself prime.
//
// Fails with ErrOutOfRange for n in {-1, 0, 1}.
func Factors(n int64) ([]int64, error) {
	n = abs(n)

	if n == 0 || n == 1 {
		return nil, opError("factors", ErrOutOfRange)
	}

	var result []int64

	divide := func(d int64) {
		for n%d == 0 {
			result = append(result, d)
			n /= d
		}
	}

	for _, d := range smallPrimes() {
		if d*d > n {
			break
		}
		divide(d)
	}

	// n now has no factor below the sieve limit, so remaining candidates
	// are odd. d <= n/d rather than d*d <= n: the square overflows int64
	// once d passes 2^31.5.
	for d := int64(sieveLimit) + 1; d <= n/d; d += 2 {
		divide(d)
	}

	if n > 1 {
		result = append(result, n)
	}

	return result, nil
}
