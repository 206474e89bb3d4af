// Package perm implements inversion and composition of permutations
// represented as index slices: a permutation of size N is a slice of length N
// holding a bijection on {0, ..., N-1}.
package perm

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when an index slice is not a bijection on its own
// length range, or when the permutations given to Compose differ in length.
var ErrInvalid = errors.New("invalid permutation")

// Valid reports whether p is a permutation: every value in [0, len(p)) and
// every value appearing exactly once.
func Valid(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inverse returns the inverse of the permutation p.
//
// Fails with ErrInvalid when p is not a permutation.
func Inverse(p []int) ([]int, error) {
	if !Valid(p) {
		return nil, fmt.Errorf("invperm: %w", ErrInvalid)
	}

	result := make([]int, len(p))
	for i, v := range p {
		result[v] = i
	}

	return result, nil
}

// Compose returns the composition p after sigma, i.e. result[i] =
// p[sigma[i]].
//
// Fails with ErrInvalid when either argument is not a permutation or when the
// lengths differ.
func Compose(p, sigma []int) ([]int, error) {
	if !Valid(p) || !Valid(sigma) || len(p) != len(sigma) {
		return nil, fmt.Errorf("compperm: %w", ErrInvalid)
	}

	result := make([]int, len(p))
	for i := range result {
		result[i] = p[sigma[i]]
	}

	return result, nil
}
