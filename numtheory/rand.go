package numtheory

import (
	"math/rand/v2"
)

// Source yields uniform random integers over an inclusive range. It is the
// only way randomness enters this package; injecting a seeded Source makes
// the primality oracle deterministic.
//
// Implementations must be safe for concurrent use if the Oracle holding them
// is shared between goroutines.
type Source interface {
	// Int64 returns a uniform random integer in [low, high]. low <= high.
	Int64(low, high int64) int64
}

// NewSource wraps a math/rand/v2 generator. The returned Source is not safe
// for concurrent use unless r is.
func NewSource(r *rand.Rand) Source {
	return randSource{r}
}

type randSource struct {
	r *rand.Rand
}

func (s randSource) Int64(low, high int64) int64 {
	n := span(low, high)
	if n == 0 { // the full int64 range
		return int64(s.r.Uint64())
	}
	return low + int64(s.r.Uint64N(n))
}

// defaultSource draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Int64(low, high int64) int64 {
	n := span(low, high)
	if n == 0 { // the full int64 range
		return int64(rand.Uint64())
	}
	return low + int64(rand.Uint64N(n))
}

// span returns high-low+1 as a uint64. Two's complement makes the subtraction
// exact even when high-low overflows int64.
func span(low, high int64) uint64 {
	return uint64(high) - uint64(low) + 1
}
