// Package numtheory implements the number-theory primitives used by the
// simulation layers: gcd/lcm and the extended Euclidean algorithm, modular
// exponentiation, modular inverses, trial-division factorization, simple
// continued fractions, and a probabilistic primality oracle (Fermat pre-filter
// followed by Miller-Rabin) with random prime generation in an interval.
//
// All integers are int64 with C-style truncating division; intermediate
// modular products never overflow (see MulMod). Every function is pure and
// safe for concurrent use; randomness enters only through a Source, which
// callers may inject for deterministic behavior.
package numtheory
