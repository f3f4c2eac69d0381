package group

import (
	"fmt"

	"github.com/samber/lo"
)

// Stabilizer returns Stab(x) = { σ ∈ S_n | σ(x) = x }, the permutations
// fixing x. Its size is always (n-1)!.
func Stabilizer(n, x uint64) ([]Permutation, error) {
	if x < 1 || x > n {
		return nil, fmt.Errorf("%w: fixed point %v is outside [1..%v]", ErrInvalidInput, x, n)
	}

	return Constrained(n, []func(partial Permutation) bool{
		func(partial Permutation) bool {
			return partial[x-1] == 0 || partial[x-1] == x
		},
	})
}

// Orbit returns Orb(x) = { σ(x) | σ ∈ group }, the elements x is carried to.
// Under the natural action of the full S_n the orbit is the whole set.
func Orbit(permutations []Permutation, x uint64) []uint64 {
	return lo.Uniq(lo.Map(permutations, func(sigma Permutation, _ int) uint64 {
		return sigma.Apply(x)
	}))
}

// NCycle returns the full cycle c = (1 2 ... n), the generator of the
// rotation subgroup of S_n.
func NCycle(n uint64) (Permutation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: the symmetric group is defined for n >= 1, got %v", ErrInvalidInput, n)
	}

	cycle := make(Permutation, n)
	for i := range cycle {
		cycle[i] = uint64(i) + 2
	}
	cycle[n-1] = 1
	return cycle, nil
}

// CyclicSubgroup returns ⟨c⟩ = { c^0, c^1, ... } with duplicates collapsed.
// Its size is the multiplicative order of c, which for a full n-cycle is n.
func CyclicSubgroup(generator Permutation) []Permutation {
	subgroup := []Permutation{Identity(generator.Degree())}
	for current := generator; !current.IsIdentity(); current, _ = Compose(current, generator) {
		subgroup = append(subgroup, current)
	}
	return subgroup
}

// IsSubgroup checks whether the candidate set forms a subgroup of S_n: the
// identity is present, the set is closed under composition and every
// element's inverse is a member. It is a predicate: a failing candidate is a
// false answer, not an error. Closure is checked pairwise, which is quadratic
// in the candidate size.
func IsSubgroup(candidate []Permutation, n uint64) bool {
	if len(candidate) == 0 {
		return false
	}

	indexer := NewIndexer(n)
	members := make(map[uint64]bool, len(candidate))
	for _, sigma := range candidate {
		if sigma.Degree() != n {
			return false
		}
		members[indexer.Index(sigma)] = true
	}

	if !members[indexer.Index(Identity(n))] {
		return false
	}

	for _, sigma := range candidate {
		if !members[indexer.Index(sigma.Inverse())] {
			return false
		}
		for _, tau := range candidate {
			composition, _ := Compose(sigma, tau)
			if !members[indexer.Index(composition)] {
				return false
			}
		}
	}
	return true
}

// LeftCoset returns σH = { σ∘h | h ∈ H }.
func LeftCoset(sigma Permutation, subgroup []Permutation) []Permutation {
	return lo.Map(subgroup, func(h Permutation, _ int) Permutation {
		coset, _ := Compose(sigma, h)
		return coset
	})
}

// CosetDecomposition partitions the given group into distinct left cosets of
// the subgroup. The subgroup's own coset comes first, the rest follow in the
// order their representatives appear.
func CosetDecomposition(permutations []Permutation, subgroup []Permutation) [][]Permutation {
	if len(permutations) == 0 {
		return nil
	}

	indexer := NewIndexer(permutations[0].Degree())
	covered := make(map[uint64]bool, len(permutations))
	cosets := [][]Permutation{}

	identityFirst := append([]Permutation{Identity(permutations[0].Degree())}, permutations...)
	for _, sigma := range identityFirst {
		if covered[indexer.Index(sigma)] {
			continue
		}
		coset := LeftCoset(sigma, subgroup)
		cosets = append(cosets, coset)
		for _, element := range coset {
			covered[indexer.Index(element)] = true
		}
	}
	return cosets
}
