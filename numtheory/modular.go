package numtheory

// MulMod returns (a*b) mod m without ever forming the product a*b, which may
// overflow int64 when a and b are close to m. One operand is decomposed in
// binary; the accumulator and the running power of two are reduced with
// subtraction so that no intermediate value exceeds 2*m.
//
// Requires a >= 0, b >= 0 and m > 0. The result is in [0, m).
func MulMod(a, b, m int64) int64 {
	a %= m
	b %= m
	var r int64
	for b > 0 {
		if b&1 == 1 {
			if m-r > a {
				r = r + a
			} else {
				r = r + a - m
			}
		}
		b >>= 1
		if b > 0 {
			if m-a > a {
				a = a + a
			} else {
				a = a + a - m
			}
		}
	}
	return r
}

// ModPow returns a^n mod p computed by square-and-multiply over MulMod.
//
// Requires a >= 0, n >= 0 and p >= 1; 0^0 is rejected as undefined. Fails
// with ErrOutOfRange on any domain violation. The result is in [0, p).
func ModPow(a, n, p int64) (int64, error) {
	if a < 0 || n < 0 || p < 1 {
		return 0, opError("modpow", ErrOutOfRange)
	}
	if a == 0 && n == 0 {
		return 0, opError("modpow", ErrOutOfRange)
	}

	if a == 0 {
		return 0, nil
	}
	if n == 0 && p == 1 {
		return 0, nil
	}

	result := int64(1)
	a %= p
	for ; n > 0; n /= 2 {
		if n%2 == 1 {
			result = MulMod(result, a, p)
		}
		a = MulMod(a, a, p)
	}

	return result, nil
}
