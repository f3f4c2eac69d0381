package group

// Indexer assigns every permutation of a fixed degree a unique index in
// [0, n!) and back. The identity always receives index 0.
type Indexer interface {
	// Returns the unique index of the permutation among all of its degree
	Index(sigma Permutation) uint64
	// Returns the permutation of the given index
	Permutation(index uint64) Permutation
}

func NewIndexer(degree uint64) Indexer {
	return &lehmerIndexer{degree: degree}
}

// lehmerIndexer ranks permutations by their Lehmer code: digit i counts the
// values after position i that are smaller than σ(i+1), weighted factorially.
type lehmerIndexer struct {
	degree uint64
}

func (indexer *lehmerIndexer) Index(sigma Permutation) uint64 {
	index := uint64(0)
	for i := uint64(0); i < indexer.degree; i++ {
		smallerAfter := uint64(0)
		for j := i + 1; j < indexer.degree; j++ {
			if sigma[j] < sigma[i] {
				smallerAfter++
			}
		}
		index += smallerAfter * Factorial(indexer.degree-i-1)
	}
	return index
}

func (indexer *lehmerIndexer) Permutation(index uint64) Permutation {
	remaining := Identity(indexer.degree)
	permutation := make(Permutation, indexer.degree)

	for i := uint64(0); i < indexer.degree; i++ {
		radix := Factorial(indexer.degree - i - 1)
		digit := index / radix
		index = index % radix

		permutation[i] = remaining[digit]
		remaining = append(remaining[:digit], remaining[digit+1:]...)
	}
	return permutation
}
