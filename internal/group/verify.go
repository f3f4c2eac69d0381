package group

import (
	"fmt"

	"github.com/samber/lo"
)

// Check is the outcome of a single verification step.
type Check struct {
	Name   string
	Pass   bool
	Detail string
}

// Passed reports whether every check in the list holds.
func Passed(checks []Check) bool {
	return lo.EveryBy(checks, func(check Check) bool { return check.Pass })
}

// VerifyGroup runs the structural verification of the full group S_n:
//
//  1. |S_n| = n!, counted over the actual enumeration
//  2. the identity is unique — exactly one permutation fixes every element
func VerifyGroup(n uint64) ([]Check, error) {
	symmetricGroup, err := Generate(n)
	if err != nil {
		return nil, err
	}

	identities := lo.CountBy(symmetricGroup, func(sigma Permutation) bool {
		return sigma.IsIdentity()
	})

	checks := []Check{
		{
			Name:   fmt.Sprintf("|S_%v| = %v!", n, n),
			Pass:   uint64(len(symmetricGroup)) == Factorial(n),
			Detail: fmt.Sprintf("enumerated %v, expected %v", len(symmetricGroup), Factorial(n)),
		},
		{
			Name:   "the identity is unique",
			Pass:   identities == 1,
			Detail: fmt.Sprintf("%v of %v permutations fix every element", identities, len(symmetricGroup)),
		},
	}
	return checks, nil
}

// VerifyLagrange checks Lagrange's theorem for the given subgroup size:
// it must divide n!.
func VerifyLagrange(subgroupSize, n uint64) (bool, error) {
	if n < 1 || n > MaxDegree {
		return false, fmt.Errorf("%w: n = %v is outside [1..%v]", ErrInvalidInput, n, MaxDegree)
	} else if subgroupSize == 0 {
		return false, fmt.Errorf("%w: a subgroup cannot be empty", ErrInvalidInput)
	}
	return Factorial(n)%subgroupSize == 0, nil
}

// VerifyOrbitStabilizer checks the orbit-stabilizer theorem for the natural
// action of S_n on x: |S_n| = |Orb(x)| × |Stab(x)|. Both sides are computed
// by enumeration, never assumed.
func VerifyOrbitStabilizer(n, x uint64) (bool, error) {
	symmetricGroup, err := Generate(n)
	if err != nil {
		return false, err
	}
	stabilizer, err := Stabilizer(n, x)
	if err != nil {
		return false, err
	}

	orbit := Orbit(symmetricGroup, x)
	return uint64(len(symmetricGroup)) == uint64(len(orbit))*uint64(len(stabilizer)), nil
}

// VerifyStabilizer runs the full stabilizer verification for S_n and the
// fixed point x:
//
//  1. Stab(x) satisfies the subgroup axioms
//  2. |Stab(x)| = (n-1)!
//  3. |S_n| = |Orb(x)| × |Stab(x)|
//  4. the index [S_n : Stab(x)] equals n
//  5. the left cosets of Stab(x) partition S_n
func VerifyStabilizer(n, x uint64) ([]Check, error) {
	symmetricGroup, err := Generate(n)
	if err != nil {
		return nil, err
	}
	stabilizer, err := Stabilizer(n, x)
	if err != nil {
		return nil, err
	}

	orbit := Orbit(symmetricGroup, x)
	cosets := CosetDecomposition(symmetricGroup, stabilizer)
	cosetElements := lo.SumBy(cosets, func(coset []Permutation) int { return len(coset) })

	checks := []Check{
		{
			Name:   fmt.Sprintf("Stab(%v) is a subgroup of S_%v", x, n),
			Pass:   IsSubgroup(stabilizer, n),
			Detail: fmt.Sprintf("%v elements checked for identity, closure and inverses", len(stabilizer)),
		},
		{
			Name:   fmt.Sprintf("|Stab(%v)| = (%v-1)!", x, n),
			Pass:   uint64(len(stabilizer)) == Factorial(n-1),
			Detail: fmt.Sprintf("got %v, expected %v", len(stabilizer), Factorial(n-1)),
		},
		{
			Name:   fmt.Sprintf("orbit-stabilizer: |S_%v| = |Orb| × |Stab|", n),
			Pass:   uint64(len(symmetricGroup)) == uint64(len(orbit))*uint64(len(stabilizer)),
			Detail: fmt.Sprintf("%v = %v × %v", len(symmetricGroup), len(orbit), len(stabilizer)),
		},
		{
			Name:   fmt.Sprintf("index [S_%v : Stab(%v)] = %v", n, x, n),
			Pass:   uint64(len(symmetricGroup))/uint64(len(stabilizer)) == n,
			Detail: fmt.Sprintf("got %v", len(symmetricGroup)/len(stabilizer)),
		},
		{
			Name:   "left cosets partition the group",
			Pass:   uint64(len(cosets)) == n && cosetElements == len(symmetricGroup),
			Detail: fmt.Sprintf("%v cosets × %v elements = %v", len(cosets), len(stabilizer), cosetElements),
		},
	}
	return checks, nil
}

// VerifyCyclic runs the verification of the rotation subgroup ⟨c⟩ for the
// full cycle c = (1 2 ... n): subgroup axioms, order n, and Lagrange.
func VerifyCyclic(n uint64) ([]Check, error) {
	if n > MaxDegree {
		return nil, fmt.Errorf("%w: n = %v exceeds the enumeration ceiling of %v", ErrInvalidInput, n, MaxDegree)
	}
	cycle, err := NCycle(n)
	if err != nil {
		return nil, err
	}

	subgroup := CyclicSubgroup(cycle)
	divides, err := VerifyLagrange(uint64(len(subgroup)), n)
	if err != nil {
		return nil, err
	}

	checks := []Check{
		{
			Name:   fmt.Sprintf("⟨%v⟩ is a subgroup of S_%v", cycle, n),
			Pass:   IsSubgroup(subgroup, n),
			Detail: fmt.Sprintf("%v elements checked for identity, closure and inverses", len(subgroup)),
		},
		{
			Name:   fmt.Sprintf("|⟨c⟩| equals the order of c = %v", cycle),
			Pass:   uint64(len(subgroup)) == cycle.Order() && cycle.Order() == n,
			Detail: fmt.Sprintf("got %v, expected %v", len(subgroup), n),
		},
		{
			Name:   fmt.Sprintf("Lagrange: |⟨c⟩| divides %v!", n),
			Pass:   divides,
			Detail: fmt.Sprintf("%v divides %v", len(subgroup), Factorial(n)),
		},
	}
	return checks, nil
}
