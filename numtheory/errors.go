package numtheory

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. They are always wrapped with the name
// of the failing operation, so callers can match with errors.Is.
var (
	// ErrZeroSize is returned when an operation receives an empty slice.
	ErrZeroSize = errors.New("zero-sized input")

	// ErrOutOfRange is returned when an argument violates an operation's
	// documented domain.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrPrimeNotFound is returned by RandPrime when the search budget is
	// exhausted without finding a prime.
	ErrPrimeNotFound = errors.New("prime not found")
)

func opError(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}
