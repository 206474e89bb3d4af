package numtheory

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestModPow(t *testing.T) {
	assert := require.New(t)

	for _, tc := range []struct {
		a, n, p int64
		want    int64
	}{
		{4, 13, 497, 445},
		{2, 10, 1000, 24},
		{0, 5, 7, 0},
		{5, 0, 7, 1},
		{5, 0, 1, 0},
		{7, 1, 13, 7},
		{math.MaxInt64 - 1, 2, math.MaxInt64, 1},
	} {
		got, err := ModPow(tc.a, tc.n, tc.p)
		assert.NoError(err)
		assert.Equal(tc.want, got, "modpow(%d, %d, %d)", tc.a, tc.n, tc.p)
	}
}

func TestModPowDomain(t *testing.T) {
	assert := require.New(t)

	for _, tc := range []struct{ a, n, p int64 }{
		{0, 0, 7},  // 0^0 undefined
		{-1, 3, 7}, // negative base
		{2, -3, 7}, // negative exponent
		{2, 3, 0},  // modulus < 1
		{2, 3, -7},
	} {
		_, err := ModPow(tc.a, tc.n, tc.p)
		assert.ErrorIs(err, ErrOutOfRange, "modpow(%d, %d, %d)", tc.a, tc.n, tc.p)
	}
}

func TestMulModAgainstBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)
	properties.Property("MulMod(a, b, m) == a*b mod m over big.Int", prop.ForAll(
		func(a, b, m int64) bool {
			got := MulMod(a, b, m)
			want := new(big.Int).Mul(big.NewInt(a%m), big.NewInt(b%m))
			want.Mod(want, big.NewInt(m))
			return want.IsInt64() && got == want.Int64()
		},
		gen.Int64Range(0, math.MaxInt64),
		gen.Int64Range(0, math.MaxInt64),
		gen.Int64Range(1, math.MaxInt64),
	))

	properties.Property("ModPow matches big.Int Exp", prop.ForAll(
		func(a, n, p int64) bool {
			got, err := ModPow(a, n, p)
			if err != nil {
				return false
			}
			want := new(big.Int).Exp(big.NewInt(a), big.NewInt(n), big.NewInt(p))
			return want.IsInt64() && got == want.Int64()
		},
		gen.Int64Range(1, math.MaxInt64),
		gen.Int64Range(0, 1<<20),
		gen.Int64Range(1, math.MaxInt64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
