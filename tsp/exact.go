package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Exact returns an optimal tour computed with the Held–Karp dynamic program.
//
// City 0 is fixed as the start, so subsets range over the other m = n-1
// cities only. cost[S·m + j] is the length of the shortest path that leaves
// city 0, visits exactly the cities of S and stops at city j+1 (bit j of S).
// Both tables are flat slices indexed the same way.
//
// The returned Tour is an open permutation starting at 0.
//
// Errors: ErrEmpty, ErrTooLarge (n > MaxExactCities), ErrNegativeWeight.
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func Exact(dist mat.Symmetric) (Result, error) {
	if dist == nil || dist.SymmetricDim() == 0 {
		return Result{}, ErrEmpty
	}
	n := dist.SymmetricDim()
	if n > MaxExactCities {
		return Result{}, ErrTooLarge
	}
	if n == 1 {
		return Result{Tour: []int{0}}, nil
	}
	if err := checkWeights(dist); err != nil {
		return Result{}, err
	}

	var (
		m     = n - 1
		full  = 1<<m - 1
		cost  = make([]float64, (full+1)*m)
		via   = make([]int, (full+1)*m)
		inf   = math.Inf(1)
		edge  = func(a, b int) float64 { return dist.At(a+1, b+1) }
		start = func(b int) float64 { return dist.At(0, b+1) }
	)
	for i := range cost {
		cost[i] = inf
		via[i] = -1
	}
	for j := 0; j < m; j++ {
		cost[(1<<j)*m+j] = start(j)
	}

	for set := 1; set <= full; set++ {
		for j := 0; j < m; j++ {
			if set&(1<<j) == 0 {
				continue
			}
			rest := set &^ (1 << j)
			if rest == 0 {
				continue
			}
			cell := set*m + j
			for k := 0; k < m; k++ {
				if rest&(1<<k) == 0 {
					continue
				}
				if c := cost[rest*m+k] + edge(k, j); c < cost[cell] {
					cost[cell] = c
					via[cell] = k
				}
			}
		}
	}

	var (
		best = inf
		last = -1
	)
	for j := 0; j < m; j++ {
		if c := cost[full*m+j] + start(j); c < best {
			best, last = c, j
		}
	}

	tour := make([]int, n)
	for pos, set, j := n-1, full, last; pos > 0; pos-- {
		tour[pos] = j + 1
		set, j = set&^(1<<j), via[set*m+j]
	}

	return Result{Tour: tour, Cost: roundCost(best)}, nil
}

// checkWeights rejects NaN and negative off-diagonal entries.
func checkWeights(dist mat.Symmetric) error {
	n := dist.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := dist.At(i, j); math.IsNaN(w) || w < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}
