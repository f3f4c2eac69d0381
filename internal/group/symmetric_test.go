package group

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("produces n! distinct bijections", func(t *testing.T) {
		for n := uint64(1); n <= 6; n++ {
			// Act
			symmetricGroup, err := Generate(n)

			// Assert
			assert.Nil(t, err)
			assert.Len(t, symmetricGroup, int(Factorial(n)))

			indexer := NewIndexer(n)
			seen := make(map[uint64]bool, len(symmetricGroup))
			for _, sigma := range symmetricGroup {
				_, validationErr := New(sigma)
				assert.Nil(t, validationErr)
				assert.False(t, seen[indexer.Index(sigma)])
				seen[indexer.Index(sigma)] = true
			}
		}
	})

	t.Run("rejects degrees below 1", func(t *testing.T) {
		_, err := Generate(0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects degrees above the ceiling", func(t *testing.T) {
		_, err := Generate(MaxDegree + 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, _ := Generate(4)
		second, _ := Generate(4)

		assert.Equal(t, first, second)
	})
}

func TestConstrained(t *testing.T) {
	t.Run("equals filtering the full group", func(t *testing.T) {
		// Arrange
		var n uint64 = 5
		fixesTwo := func(sigma Permutation) bool { return sigma.Apply(2) == 2 }

		// Act
		constrained, err := Constrained(n, []func(partial Permutation) bool{
			func(partial Permutation) bool {
				return partial[1] == 0 || partial[1] == 2
			},
		})

		// Assert
		assert.Nil(t, err)
		symmetricGroup, _ := Generate(n)
		assert.Equal(t, lo.Filter(symmetricGroup, func(sigma Permutation, _ int) bool {
			return fixesTwo(sigma)
		}), constrained)
	})

	t.Run("an unsatisfiable constraint yields nothing", func(t *testing.T) {
		constrained, err := Constrained(3, []func(partial Permutation) bool{
			func(partial Permutation) bool { return false },
		})

		assert.Nil(t, err)
		assert.Empty(t, constrained)
	})
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), Factorial(0))
	assert.Equal(t, uint64(1), Factorial(1))
	assert.Equal(t, uint64(6), Factorial(3))
	assert.Equal(t, uint64(3628800), Factorial(10))
}
