package group

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestStabilizer(t *testing.T) {
	t.Run("Stab(1) in S_3 is exactly {e, (2 3)}", func(t *testing.T) {
		// Act
		stabilizer, err := Stabilizer(3, 1)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, stabilizer, 2)
		assert.Contains(t, stabilizer, Permutation{1, 2, 3})
		assert.Contains(t, stabilizer, Permutation{1, 3, 2})
	})

	t.Run("has (n-1)! elements, all fixing x", func(t *testing.T) {
		for n := uint64(1); n <= 6; n++ {
			for x := uint64(1); x <= n; x++ {
				stabilizer, err := Stabilizer(n, x)

				assert.Nil(t, err)
				assert.Len(t, stabilizer, int(Factorial(n-1)))
				assert.True(t, lo.EveryBy(stabilizer, func(sigma Permutation) bool {
					return sigma.Apply(x) == x
				}))
			}
		}
	})

	t.Run("rejects fixed points outside the set", func(t *testing.T) {
		_, err := Stabilizer(3, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = Stabilizer(3, 4)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestOrbit(t *testing.T) {
	// The natural action of the full group is transitive: every orbit is the
	// whole set.
	symmetricGroup, _ := Generate(4)

	for x := uint64(1); x <= 4; x++ {
		orbit := Orbit(symmetricGroup, x)
		assert.ElementsMatch(t, []uint64{1, 2, 3, 4}, orbit)
	}
}

func TestNCycle(t *testing.T) {
	cycle, err := NCycle(4)

	assert.Nil(t, err)
	assert.Equal(t, Permutation{2, 3, 4, 1}, cycle)
	assert.Equal(t, "(1 2 3 4)", cycle.String())
	assert.Equal(t, uint64(4), cycle.Order())

	_, err = NCycle(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCyclicSubgroup(t *testing.T) {
	t.Run("a full n-cycle generates n rotations", func(t *testing.T) {
		for n := uint64(1); n <= 6; n++ {
			cycle, _ := NCycle(n)

			subgroup := CyclicSubgroup(cycle)

			assert.Len(t, subgroup, int(n))
			assert.True(t, IsSubgroup(subgroup, n))
		}
	})

	t.Run("S_3 rotations are {e, c, c²}", func(t *testing.T) {
		cycle, _ := NCycle(3)

		subgroup := CyclicSubgroup(cycle)

		assert.Equal(t, []Permutation{
			{1, 2, 3},
			{2, 3, 1},
			{3, 1, 2},
		}, subgroup)
	})

	t.Run("collapses duplicate powers", func(t *testing.T) {
		transposition, _ := New([]uint64{2, 1, 3})

		subgroup := CyclicSubgroup(transposition)

		assert.Len(t, subgroup, 2)
	})
}

func TestIsSubgroup(t *testing.T) {
	t.Run("the trivial subgroup for every degree", func(t *testing.T) {
		for n := uint64(1); n <= 6; n++ {
			assert.True(t, IsSubgroup([]Permutation{Identity(n)}, n))

			divides, err := VerifyLagrange(1, n)
			assert.Nil(t, err)
			assert.True(t, divides)
		}
	})

	t.Run("the stabilizer satisfies the axioms", func(t *testing.T) {
		stabilizer, _ := Stabilizer(3, 1)
		assert.True(t, IsSubgroup(stabilizer, 3))
	})

	t.Run("missing identity fails", func(t *testing.T) {
		assert.False(t, IsSubgroup([]Permutation{{2, 1, 3}}, 3))
	})

	t.Run("missing closure fails", func(t *testing.T) {
		// (1 2) and (2 3) compose to a 3-cycle outside the set
		candidate := []Permutation{
			{1, 2, 3},
			{2, 1, 3},
			{1, 3, 2},
		}
		assert.False(t, IsSubgroup(candidate, 3))
	})

	t.Run("the whole group is a subgroup of itself", func(t *testing.T) {
		symmetricGroup, _ := Generate(4)
		assert.True(t, IsSubgroup(symmetricGroup, 4))
	})

	t.Run("an empty candidate fails", func(t *testing.T) {
		assert.False(t, IsSubgroup(nil, 3))
	})

	t.Run("a subgroup not contained in the stabilizer", func(t *testing.T) {
		// {e, (1 2)} satisfies the axioms but does not fix 1: it must pass
		// the subgroup check yet fail stabilizer membership.
		candidate := []Permutation{
			{1, 2, 3},
			{2, 1, 3},
		}

		assert.True(t, IsSubgroup(candidate, 3))

		stabilizer, _ := Stabilizer(3, 1)
		indexer := NewIndexer(3)
		stabilizerIndices := lo.Map(stabilizer, func(sigma Permutation, _ int) uint64 {
			return indexer.Index(sigma)
		})
		assert.NotContains(t, stabilizerIndices, indexer.Index(Permutation{2, 1, 3}))
	})
}

func TestLeftCoset(t *testing.T) {
	stabilizer, _ := Stabilizer(3, 1)
	sigma, _ := New([]uint64{2, 3, 1})

	coset := LeftCoset(sigma, stabilizer)

	assert.Len(t, coset, len(stabilizer))
	// Every member of σ·Stab(1) sends 1 to σ(1)
	assert.True(t, lo.EveryBy(coset, func(tau Permutation) bool {
		return tau.Apply(1) == sigma.Apply(1)
	}))
}

func TestCosetDecomposition(t *testing.T) {
	for n := uint64(2); n <= 5; n++ {
		// Arrange
		symmetricGroup, _ := Generate(n)
		stabilizer, _ := Stabilizer(n, 1)

		// Act
		cosets := CosetDecomposition(symmetricGroup, stabilizer)

		// Assert: n cosets of equal size partitioning the group
		assert.Len(t, cosets, int(n))
		indexer := NewIndexer(n)
		covered := make(map[uint64]bool)
		for _, coset := range cosets {
			assert.Len(t, coset, len(stabilizer))
			for _, element := range coset {
				assert.False(t, covered[indexer.Index(element)])
				covered[indexer.Index(element)] = true
			}
		}
		assert.Len(t, covered, len(symmetricGroup))

		// The subgroup's own coset comes first
		assert.True(t, IsSubgroup(cosets[0], n))
	}
}
