// Package tsp - 2-opt local search used to polish a tour found by the GA.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour.
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
//
// and an accepted move reverses the segment [i..k] in place.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Weights are prefetched into a flat buffer to keep interface calls out of the hot loop.
//   - Cancellation is checked sparsely through the context.
//   - Costs are rounded to costPrecision.
//
// Complexity:
//   - One pass: O(n²) candidate checks; first-improvement restarts after each accepted move.
//   - Overall: O(iter·n²) time typical; O(n²) extra space for the weight buffer.
package tsp

import (
	"context"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// TwoOpt improves perm with first-improvement 2-opt until a local optimum,
// opts.MaxIters accepted moves, or ctx cancellation.
//
// The returned permutation starts at vertex 0 and its cost is never larger
// than the cost of perm. On cancellation the best permutation found so far is
// returned together with ctx.Err().
//
// Errors: those of TourCost, ctx.Err().
func TwoOpt(ctx context.Context, dist mat.Symmetric, perm []int, opts Options) ([]int, float64, error) {
	cost, err := TourCost(dist, perm)
	if err != nil {
		return nil, 0, err
	}
	var n = dist.SymmetricDim()

	// Closed working tour: cur[n] == cur[0] == 0.
	cur := make([]int, n+1)
	copy(cur, RotateToZero(perm))
	cur[n] = cur[0]
	if n < 4 {
		// Every tour on three or fewer cities has the same cost.
		return cur[:n], cost, nil
	}

	w := make([]float64, n*n)
	{
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j] = dist.At(i, j)
			}
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	var (
		accepted int
		step     int
	)
	for {
		improved := false

		var (
			a, b, c, d         int
			delta              float64
			wab, wcd, wac, wbd float64
			i, k               int
		)

	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				step++
				if step&2047 == 0 && ctx.Err() != nil {
					return cur[:n], roundCost(cost), ctx.Err()
				}

				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[k+1]

				wab = at(a, b)
				wcd = at(c, d)
				wac = at(a, c)
				wbd = at(b, d)
				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}

				delta = (wac + wbd) - (wab + wcd)
				if delta >= -eps {
					continue
				}
				slices.Reverse(cur[i : k+1])
				cost += delta
				accepted++
				improved = true

				if opts.MaxIters > 0 && accepted >= opts.MaxIters {
					return cur[:n], roundCost(cost), nil
				}

				// First-improvement policy: restart scanning from the beginning.
				break scan
			}
		}

		if !improved {
			break
		}
	}

	return cur[:n], roundCost(cost), nil
}
