package group

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Permutation is a bijection from {1, ..., n} to itself, stored as a sequence
// where position i-1 holds σ(i). Values are never mutated after construction.
type Permutation []uint64

// New validates the given sequence as a bijection on {1, ..., n} and returns
// it as a Permutation. The sequence is copied.
func New(values []uint64) (Permutation, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: a permutation must have at least one element", ErrInvalidInput)
	}

	seen := make([]bool, len(values))
	for _, value := range values {
		if value < 1 || value > uint64(len(values)) {
			return nil, fmt.Errorf("%w: value %v is outside the domain [1..%v]", ErrInvalidInput, value, len(values))
		} else if seen[value-1] {
			return nil, fmt.Errorf("%w: value %v appears more than once", ErrInvalidInput, value)
		}
		seen[value-1] = true
	}

	permutation := make(Permutation, len(values))
	copy(permutation, values)
	return permutation, nil
}

// Identity returns the identity permutation e on {1, ..., n}, where e(i) = i.
func Identity(n uint64) Permutation {
	permutation := make(Permutation, n)
	for i := range permutation {
		permutation[i] = uint64(i) + 1
	}
	return permutation
}

// Degree returns n, the size of the set the permutation acts on.
func (sigma Permutation) Degree() uint64 {
	return uint64(len(sigma))
}

// Apply returns σ(x). x must lie in [1..n].
func (sigma Permutation) Apply(x uint64) uint64 {
	return sigma[x-1]
}

// Compose returns σ∘τ, defined by (σ∘τ)(i) = σ(τ(i)): τ acts first, then σ.
// Both permutations must act on the same set.
func Compose(sigma, tau Permutation) (Permutation, error) {
	if len(sigma) != len(tau) {
		return nil, fmt.Errorf("%w: permutations must act on the same set: degrees %v and %v", ErrInvalidInput, len(sigma), len(tau))
	}

	composition := make(Permutation, len(sigma))
	for i := range composition {
		composition[i] = sigma[tau[i]-1]
	}
	return composition, nil
}

// Inverse returns σ⁻¹, satisfying Compose(σ, σ⁻¹) = e.
func (sigma Permutation) Inverse() Permutation {
	inverse := make(Permutation, len(sigma))
	for i, value := range sigma {
		inverse[value-1] = uint64(i) + 1
	}
	return inverse
}

// Power returns σ^k for any integer k. σ^order = e, so the exponent is
// reduced modulo the order first; that also keeps k = math.MinInt safe from
// negation overflow.
func (sigma Permutation) Power(k int) Permutation {
	order := int(sigma.Order())
	exponent := k % order
	if exponent < 0 {
		exponent += order
	}

	result := Identity(sigma.Degree())
	for range exponent {
		result, _ = Compose(result, sigma)
	}
	return result
}

// Order returns the multiplicative order of σ: the smallest k > 0 with σ^k = e.
func (sigma Permutation) Order() uint64 {
	current := sigma
	order := uint64(1)
	for !current.IsIdentity() {
		current, _ = Compose(current, sigma)
		order++
	}
	return order
}

// IsIdentity reports whether σ(i) = i for every i.
func (sigma Permutation) IsIdentity() bool {
	for i, value := range sigma {
		if value != uint64(i)+1 {
			return false
		}
	}
	return true
}

// Equal reports whether both permutations have the same degree and agree on
// every element.
func (sigma Permutation) Equal(tau Permutation) bool {
	if len(sigma) != len(tau) {
		return false
	}
	for i := range sigma {
		if sigma[i] != tau[i] {
			return false
		}
	}
	return true
}

// Cycles returns the cycle decomposition of σ as a list of cycles, omitting
// fixed points. The identity decomposes into no cycles at all.
func (sigma Permutation) Cycles() [][]uint64 {
	visited := make([]bool, len(sigma))
	cycles := [][]uint64{}

	for start := uint64(1); start <= sigma.Degree(); start++ {
		if visited[start-1] {
			continue
		}
		cycle := []uint64{}
		for current := start; !visited[current-1]; current = sigma.Apply(current) {
			visited[current-1] = true
			cycle = append(cycle, current)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// String renders σ in cycle notation, e.g. "(1 2 3)". The identity is "e".
func (sigma Permutation) String() string {
	cycles := sigma.Cycles()
	if len(cycles) == 0 {
		return "e"
	}

	rendered := lo.Map(cycles, func(cycle []uint64, _ int) string {
		elements := lo.Map(cycle, func(element uint64, _ int) string {
			return fmt.Sprint(element)
		})
		return "(" + strings.Join(elements, " ") + ")"
	})
	return strings.Join(rendered, "")
}
