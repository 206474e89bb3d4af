package numtheory

import (
	"github.com/mrityunjay-tripathi/qpp/logger"
	"github.com/rs/zerolog"
)

const (
	// DefaultRounds is the number of Miller-Rabin witnesses tried by
	// IsPrime; the false-positive probability is at most 2^-DefaultRounds.
	DefaultRounds = 80

	// DefaultMaxAttempts is the number of candidates RandPrime draws
	// before giving up.
	DefaultMaxAttempts = 1000
)

// Oracle is a probabilistic primality tester: a Fermat pre-filter followed by
// Miller-Rabin with a configurable number of witnesses. The zero-cost way to
// use it is the package-level IsPrime and RandPrime, which share a default
// Oracle; construct one explicitly to control the witness count or to inject
// a seeded random source.
//
// An Oracle holds no per-call state and is safe for concurrent use as long as
// its Source is.
type Oracle struct {
	rng         Source
	rounds      int
	maxAttempts int
	log         zerolog.Logger
}

// Option alters the behavior of an Oracle in NewOracle. See the descriptions
// of functions returning instances of this type for implemented options.
type Option func(*Oracle) error

// WithRounds sets the number of Miller-Rabin witnesses. The false-positive
// probability is at most 2^-k.
func WithRounds(k int) Option {
	return func(o *Oracle) error {
		if k <= 0 {
			return opError("isprime", ErrOutOfRange)
		}
		o.rounds = k
		return nil
	}
}

// WithSource sets the random source used to draw witnesses and prime
// candidates. Injecting a seeded source makes the oracle deterministic.
func WithSource(src Source) Option {
	return func(o *Oracle) error {
		if src == nil {
			return opError("isprime", ErrOutOfRange)
		}
		o.rng = src
		return nil
	}
}

// WithMaxAttempts sets the candidate budget of RandPrime.
func WithMaxAttempts(n int) Option {
	return func(o *Oracle) error {
		if n <= 0 {
			return opError("randprime", ErrOutOfRange)
		}
		o.maxAttempts = n
		return nil
	}
}

// NewOracle returns an Oracle with the given options applied.
func NewOracle(opts ...Option) (*Oracle, error) {
	o := &Oracle{
		rng:         defaultSource{},
		rounds:      DefaultRounds,
		maxAttempts: DefaultMaxAttempts,
		log:         logger.Logger(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// IsPrime reports whether |n| is prime, with false-positive probability at
// most 2^-rounds.
//
// Fails with ErrOutOfRange when |n| < 2.
func (o *Oracle) IsPrime(n int64) (bool, error) {
	n = abs(n)

	if n < 2 {
		return false, opError("isprime", ErrOutOfRange)
	}

	if n == 2 || n == 3 {
		return true, nil
	}

	// Fermat pre-filter: cheap rejection of most composites.
	x := o.rng.Int64(2, n-1)
	z, err := ModPow(x, n-1, n)
	if err != nil {
		return false, err
	}
	if z != 1 {
		return false, nil
	}

	// write n-1 as 2^u * r with r odd
	u := 0
	r := n - 1
	for r%2 == 0 {
		u++
		r /= 2
	}

	for i := 0; i < o.rounds; i++ {
		a := o.rng.Int64(2, n-2)
		z, err := ModPow(a, r, n)
		if err != nil {
			return false, err
		}
		if z == 1 || z == n-1 {
			continue
		}

		witness := true
		for j := 0; j < u-1; j++ {
			z = MulMod(z, z, n)
			if z == 1 {
				// non-trivial square root of unity
				return false, nil
			}
			if z == n-1 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}

	return true, nil
}

// RandPrime returns a prime drawn uniformly from the interval [a, b]. It
// draws up to maxAttempts candidates, testing each with a Fermat test and
// then the full Miller-Rabin oracle.
//
// Fails with ErrOutOfRange when a > b and with ErrPrimeNotFound when the
// candidate budget is exhausted.
func (o *Oracle) RandPrime(a, b int64) (int64, error) {
	if a > b {
		return 0, opError("randprime", ErrOutOfRange)
	}

	for i := 0; i < o.maxAttempts; i++ {
		candidate := o.rng.Int64(a, b)
		c := abs(candidate)
		if c < 2 {
			continue
		}
		if c == 2 {
			return candidate, nil
		}

		// Fermat test before paying for the full oracle.
		x := o.rng.Int64(2, c-1)
		z, err := ModPow(x, c-1, c)
		if err != nil {
			return 0, err
		}
		if z != 1 {
			continue
		}

		ok, err := o.IsPrime(candidate)
		if err != nil {
			return 0, err
		}
		if ok {
			o.log.Debug().Int64("prime", candidate).Int("attempts", i+1).Msg("prime search done")
			return candidate, nil
		}
	}

	return 0, opError("randprime", ErrPrimeNotFound)
}

var defaultOracle = func() *Oracle {
	o, _ := NewOracle()
	return o
}()

// IsPrime reports whether |n| is prime using a default Oracle.
func IsPrime(n int64) (bool, error) {
	return defaultOracle.IsPrime(n)
}

// RandPrime returns a prime drawn uniformly from [a, b] using a default
// Oracle.
func RandPrime(a, b int64) (int64, error) {
	return defaultOracle.RandPrime(a, b)
}
