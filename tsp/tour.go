package tsp

import "slices"

// ValidatePermutation reports whether perm visits every city of an n-city
// instance exactly once. Length, range and duplicate violations all map to
// ErrDimensionMismatch.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}

	visited := make([]bool, n)
	for _, c := range perm {
		if c < 0 || c >= n || visited[c] {
			return ErrDimensionMismatch
		}
		visited[c] = true
	}

	return nil
}

// RotateToZero returns a copy of perm that starts at city 0. The cyclic
// order, and with it the closed-loop cost, is unchanged. A perm without
// city 0 is copied as is.
//
// Complexity: O(n).
func RotateToZero(perm []int) []int {
	at := max(slices.Index(perm, 0), 0)

	return append(slices.Clone(perm[at:]), perm[:at]...)
}
