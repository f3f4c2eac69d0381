package group

import "errors"

// ErrInvalidInput is the single error kind of the package: it covers malformed
// permutations, elements outside the acting set and degrees beyond MaxDegree.
// Failed verifications are boolean results, never errors.
var ErrInvalidInput = errors.New("invalid input")
