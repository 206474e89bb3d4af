package perm

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert := require.New(t)

	assert.True(Valid([]int{0}))
	assert.True(Valid([]int{2, 0, 1}))
	assert.False(Valid([]int{0, 0}))
	assert.False(Valid([]int{1, 2}))
	assert.False(Valid([]int{-1, 0}))
}

func TestInverse(t *testing.T) {
	assert := require.New(t)

	got, err := Inverse([]int{2, 0, 1})
	assert.NoError(err)
	assert.Equal([]int{1, 2, 0}, got)

	got, err = Inverse([]int{0, 1, 2})
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2}, got)

	_, err = Inverse([]int{0, 0})
	assert.ErrorIs(err, ErrInvalid)
}

func TestCompose(t *testing.T) {
	assert := require.New(t)

	got, err := Compose([]int{2, 0, 1}, []int{1, 2, 0})
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2}, got)

	_, err = Compose([]int{0, 1}, []int{0, 1, 2})
	assert.ErrorIs(err, ErrInvalid)

	_, err = Compose([]int{0, 0}, []int{0, 1})
	assert.ErrorIs(err, ErrInvalid)
}

func TestPermProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	identity := func(n int) []int {
		id := make([]int, n)
		for i := range id {
			id[i] = i
		}
		return id
	}

	properties := gopter.NewProperties(parameters)
	properties.Property("p composed with its inverse is the identity", prop.ForAll(
		func(n int, seed uint64) bool {
			r := rand.New(rand.NewPCG(seed, 0))
			p := r.Perm(n)

			inv, err := Inverse(p)
			if err != nil {
				return false
			}
			left, err := Compose(p, inv)
			if err != nil {
				return false
			}
			right, err := Compose(inv, p)
			if err != nil {
				return false
			}

			id := identity(n)
			for i := range id {
				if left[i] != id[i] || right[i] != id[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 64),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
