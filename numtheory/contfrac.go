package numtheory

import "math"

// DefaultCut is the magnitude cutoff used by ToContFrac: the expansion stops
// early once the next reciprocal exceeds it, since such a term contributes
// less than 1/DefaultCut to the value.
const DefaultCut = 1e5

// ToContFrac returns the simple continued fraction expansion of x with at
// most n terms, [a0, a1, ...] representing a0 + 1/(a1 + 1/(a2 + ...)). The
// expansion stops early when the next reciprocal is non-finite or exceeds
// DefaultCut, so fewer than n terms may be returned.
//
// Fails with ErrOutOfRange when n <= 0.
func ToContFrac(x float64, n int) ([]int64, error) {
	return ToContFracWithCut(x, n, DefaultCut)
}

// ToContFracWithCut is ToContFrac with an explicit magnitude cutoff.
func ToContFracWithCut(x float64, n int, cut float64) ([]int64, error) {
	if n <= 0 {
		return nil, opError("x2contfrac", ErrOutOfRange)
	}

	var result []int64
	for i := 0; i < n; i++ {
		var term float64
		if x > 0 {
			term = math.Floor(x)
		} else {
			term = math.Ceil(x)
		}
		result = append(result, int64(math.Round(term)))
		x = 1 / (x - term)

		if math.IsInf(x, 0) || math.IsNaN(x) || math.Abs(x) > cut {
			return result, nil
		}
	}

	return result, nil
}

// FromContFrac returns the real value of the simple continued fraction cf.
//
// Fails with ErrZeroSize on an empty expansion.
func FromContFrac(cf []int64) (float64, error) {
	if len(cf) == 0 {
		return 0, opError("contfrac2x", ErrZeroSize)
	}
	return FromContFracN(cf, len(cf))
}

// FromContFracN returns the real value of the first n terms of cf; n is
// clamped to len(cf) when larger. The fraction is evaluated bottom-up,
// folding 1/(tmp + cf[i]) from the last considered term down to cf[1].
//
// Fails with ErrZeroSize on an empty expansion and with ErrOutOfRange when
// n <= 0.
func FromContFracN(cf []int64, n int) (float64, error) {
	if len(cf) == 0 {
		return 0, opError("contfrac2x", ErrZeroSize)
	}
	if n <= 0 {
		return 0, opError("contfrac2x", ErrOutOfRange)
	}

	if n > len(cf) {
		n = len(cf)
	}

	if n == 1 { // degenerate case, an integer
		return float64(cf[0]), nil
	}

	tmp := 1 / float64(cf[n-1])
	for i := n - 2; i > 0; i-- {
		tmp = 1 / (tmp + float64(cf[i]))
	}

	return float64(cf[0]) + tmp, nil
}
