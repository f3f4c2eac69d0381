package group

import "fmt"

// MaxDegree bounds the enumerable symmetric groups. 10! is about 3.6 million
// permutations; anything larger is rejected instead of attempted.
const MaxDegree uint64 = 10

// Generate returns all n! elements of the symmetric group S_n.
func Generate(n uint64) ([]Permutation, error) {
	return Constrained(n, nil)
}

// Constrained enumerates the elements of S_n that satisfy every constraint,
// pruning partial assignments as soon as one fails. Constraints must treat a
// slot holding 0 as not yet assigned and evaluate to true for such partial
// permutations they cannot judge.
//
// Example (permutations fixing 1):
//
//	stabilizer, err := group.Constrained(n, []func(partial group.Permutation) bool{
//		func(partial group.Permutation) bool {
//			return partial[0] == 0 || partial[0] == 1
//		},
//	})
func Constrained(n uint64, constraints []func(partial Permutation) bool) ([]Permutation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: the symmetric group is defined for n >= 1, got %v", ErrInvalidInput, n)
	} else if n > MaxDegree {
		return nil, fmt.Errorf("%w: n = %v exceeds the enumeration ceiling of %v", ErrInvalidInput, n, MaxDegree)
	}

	generator := symmetricGenerator{degree: n, constraints: constraints}
	permutations := make([]Permutation, 0, Factorial(n))
	generator.enumerate(make(Permutation, n), make([]bool, n), 0, &permutations)
	return permutations, nil
}

// Factorial returns n!.
func Factorial(n uint64) uint64 {
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		result *= i
	}
	return result
}

type symmetricGenerator struct {
	degree      uint64
	constraints []func(partial Permutation) bool
}

func (generator symmetricGenerator) enumerate(
	partial Permutation,
	used []bool,
	currentSlot uint64,
	permutations *[]Permutation) {

	if currentSlot >= generator.degree {
		permutationCopy := make(Permutation, len(partial))
		copy(permutationCopy, partial)
		*permutations = append(*permutations, permutationCopy)
		return
	}

	for value := uint64(1); value <= generator.degree; value++ {
		if used[value-1] {
			continue
		}

		partial[currentSlot] = value
		constraintViolated := false
		for _, constraint := range generator.constraints {
			if !constraint(partial) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		used[value-1] = true
		generator.enumerate(partial, used, currentSlot+1, permutations)
		used[value-1] = false
	}

	partial[currentSlot] = 0
}
