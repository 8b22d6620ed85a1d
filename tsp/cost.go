package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// costPrecision is the absolute precision every reported cost is rounded to.
const costPrecision = 1e-9

// TourCost sums the edges of the closed loop perm[0] → … → perm[n-1] → perm[0].
//
// perm must be a permutation of the n cities of dist (see
// ValidatePermutation); the return edge is implied and never listed.
//
// Errors: ErrEmpty, ErrDimensionMismatch, ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist mat.Symmetric, perm []int) (float64, error) {
	if dist == nil || dist.SymmetricDim() == 0 {
		return 0, ErrEmpty
	}
	if err := ValidatePermutation(perm, dist.SymmetricDim()); err != nil {
		return 0, err
	}

	var (
		total float64
		from  = perm[len(perm)-1]
	)
	for _, to := range perm {
		w := dist.At(from, to)
		if math.IsNaN(w) || w < 0 {
			return 0, ErrNegativeWeight
		}
		total += w
		from = to
	}

	return roundCost(total), nil
}

// roundCost snaps x to costPrecision so that equal tours compare equal
// regardless of summation order.
func roundCost(x float64) float64 {
	return math.Round(x/costPrecision) * costPrecision
}
