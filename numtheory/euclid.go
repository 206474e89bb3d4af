package numtheory

// GCD returns the greatest common divisor of m and n.
//
// Fails with ErrOutOfRange when both arguments are zero. When exactly one is
// zero the absolute value of the other is returned. The result is always
// non-negative.
func GCD(m, n int64) (int64, error) {
	if m == 0 && n == 0 {
		return 0, opError("gcd", ErrOutOfRange)
	}

	if m == 0 || n == 0 {
		return max(abs(m), abs(n)), nil
	}

	result := int64(1)
	for n != 0 {
		result = n
		n = m % result
		m = result
	}

	return abs(result), nil
}

// GCDSlice returns the greatest common divisor of all elements of ns, by a
// left fold of pairwise GCD. Convention: GCDSlice([n]) = |n|.
//
// Fails with ErrZeroSize on an empty slice.
func GCDSlice(ns []int64) (int64, error) {
	if len(ns) == 0 {
		return 0, opError("gcd", ErrZeroSize)
	}

	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		result, err = GCD(result, n)
		if err != nil {
			return 0, err
		}
	}

	return abs(result), nil
}

// LCM returns the least common multiple of m and n, always non-negative.
//
// Fails with ErrOutOfRange when both arguments are zero.
func LCM(m, n int64) (int64, error) {
	if m == 0 && n == 0 {
		return 0, opError("lcm", ErrOutOfRange)
	}

	g, err := GCD(m, n)
	if err != nil {
		return 0, err
	}

	return abs(m * n / g), nil
}

// LCMSlice returns the least common multiple of all elements of ns, by a left
// fold of pairwise LCM.
//
// Fails with ErrZeroSize on an empty slice, and with ErrOutOfRange when a
// multi-element slice contains a zero. Convention: LCMSlice([n]) = n, sign
// included; the folded result for longer slices is non-negative. The single
// element keeps its sign for compatibility with the historical behavior.
func LCMSlice(ns []int64) (int64, error) {
	if len(ns) == 0 {
		return 0, opError("lcm", ErrZeroSize)
	}

	if len(ns) == 1 {
		return ns[0], nil
	}

	for _, n := range ns {
		if n == 0 {
			return 0, opError("lcm", ErrOutOfRange)
		}
	}

	result := ns[0]
	for _, n := range ns[1:] {
		var err error
		result, err = LCM(result, n)
		if err != nil {
			return 0, err
		}
	}

	return abs(result), nil
}

// ExtendedGCD runs the extended Euclidean algorithm and returns the Bezout
// coefficients a, b together with g = gcd(m, n), satisfying a*m + b*n == g.
// g is non-negative; a and b have their signs flipped together if the final
// remainder came out negative.
//
// Fails with ErrOutOfRange when both arguments are zero.
func ExtendedGCD(m, n int64) (a, b, g int64, err error) {
	if m == 0 && n == 0 {
		return 0, 0, 0, opError("egcd", ErrOutOfRange)
	}

	var q, r int64
	a1, a2 := int64(0), int64(1)
	b1, b2 := int64(1), int64(0)

	for n != 0 {
		q, r = m/n, m%n
		a, b = a2-q*a1, b2-q*b1
		m, n = n, r
		a2, a1 = a1, a
		b2, b1 = b1, b
	}
	g, a, b = m, a2, b2

	if g < 0 {
		a, b, g = -a, -b, -g
	}

	return a, b, g, nil
}

// ModInverse returns the multiplicative inverse of a modulo p, in (0, p).
//
// Requires a > 0 and p > 0; fails with ErrOutOfRange when the domain is
// violated or when a and p are not coprime (no inverse exists).
func ModInverse(a, p int64) (int64, error) {
	if a <= 0 || p <= 0 {
		return 0, opError("modinv", ErrOutOfRange)
	}

	_, y, g, err := ExtendedGCD(p, a)
	if err != nil {
		return 0, err
	}
	if g != 1 {
		return 0, opError("modinv", ErrOutOfRange)
	}

	if y > 0 {
		return y, nil
	}
	return y + p, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
