// Package tsp - Held–Karp 1-tree lower bound.
//
// For multipliers π the reduced costs are c'(u,v) = c(u,v) + π_u + π_v. A
// minimum 1-tree T(π) is an MST over V\{0} plus the two cheapest edges at
// vertex 0, and
//
//	L(π) = c'(T(π)) − 2·Σπ
//
// is a lower bound on the optimal tour for every π. Subgradient ascent with
// s_u = deg_T(u) − 2 tightens it; a 1-tree whose degrees are all 2 is a tour
// and the bound is then exact.
//
// The bound complements Exact: it is cheap enough for instances of any size
// and yields a certified optimality gap for a GA result.
package tsp

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Defaults of BoundOptions.
const (
	DefaultBoundIters = 100
	DefaultBoundAlpha = 1.0
)

// BoundOptions configures LowerBound.
type BoundOptions struct {
	// Iters is the number of subgradient steps; values below 1 mean 1.
	Iters int

	// Alpha scales each step, in (0, 2).
	Alpha float64

	// Upper is the length of a known tour. When positive and finite the step
	// follows the Polyak rule α·(Upper − L)/‖s‖²; otherwise it decays as
	// α·scale/(1+k) with scale the mean edge weight.
	Upper float64
}

// DefaultBoundOptions returns 100 steps of size 1 without an upper bound.
func DefaultBoundOptions() BoundOptions {
	return BoundOptions{Iters: DefaultBoundIters, Alpha: DefaultBoundAlpha}
}

// LowerBound returns the best 1-tree bound found, rounded to 1e-9. Instances
// of one and two vertices are solved directly.
//
// Errors: ErrEmpty, ErrNegativeWeight, ctx.Err() (checked once per step).
//
// Complexity: O(Iters·n²) time, O(n) extra space.
func LowerBound(ctx context.Context, dist mat.Symmetric, opts BoundOptions) (float64, error) {
	if dist == nil || dist.SymmetricDim() == 0 {
		return 0, ErrEmpty
	}
	n := dist.SymmetricDim()

	var (
		i, j int
		w    float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w = dist.At(i, j); math.IsNaN(w) || w < 0 || math.IsInf(w, 0) {
				return 0, ErrNegativeWeight
			}
			sum += w
		}
	}
	switch n {
	case 1:
		return 0, nil
	case 2:
		return roundCost(2 * dist.At(0, 1)), nil
	}

	if opts.Iters < 1 {
		opts.Iters = 1
	}
	if opts.Alpha <= 0 || opts.Alpha >= 2 {
		opts.Alpha = DefaultBoundAlpha
	}
	usePolyak := opts.Upper > 0 && !math.IsInf(opts.Upper, 0)
	scale := sum / float64(n*(n-1)/2)

	ot := newOneTree(dist)
	best := math.Inf(-1)
	for k := 0; k < opts.Iters; k++ {
		if err := ctx.Err(); err != nil {
			return roundCost(math.Max(best, 0)), err
		}

		bound := ot.build()
		for _, p := range ot.pi {
			bound -= 2 * p
		}
		best = math.Max(best, bound)

		var norm2 float64
		for _, d := range ot.deg {
			norm2 += float64((d - 2) * (d - 2))
		}
		if norm2 == 0 {
			break
		}

		var step float64
		if usePolyak {
			step = opts.Alpha * math.Max(opts.Upper-bound, 0) / norm2
		} else {
			step = opts.Alpha * scale / float64(1+k)
		}
		if step == 0 {
			break
		}
		for u, d := range ot.deg {
			ot.pi[u] += step * float64(d-2)
		}
	}

	return roundCost(best), nil
}

// oneTree holds the reusable state of repeated 1-tree constructions.
type oneTree struct {
	dist   mat.Symmetric
	n      int
	pi     []float64
	deg    []int
	key    []float64
	parent []int
	done   []bool
}

func newOneTree(dist mat.Symmetric) *oneTree {
	n := dist.SymmetricDim()

	return &oneTree{
		dist:   dist,
		n:      n,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		key:    make([]float64, n),
		parent: make([]int, n),
		done:   make([]bool, n),
	}
}

func (t *oneTree) reduced(u, v int) float64 {
	return t.dist.At(u, v) + t.pi[u] + t.pi[v]
}

// build computes a minimum 1-tree rooted at vertex 0 on reduced costs,
// fills t.deg and returns its reduced cost. Prim runs over V\{0} in O(n²);
// ties go to the lower index.
func (t *oneTree) build() float64 {
	var (
		total float64
		u, v  int
	)
	for v = 0; v < t.n; v++ {
		t.deg[v] = 0
		t.key[v] = math.Inf(1)
		t.parent[v] = -1
		t.done[v] = false
	}
	t.done[0] = true
	t.key[1] = 0

	for range t.n - 1 {
		u = -1
		for v = 1; v < t.n; v++ {
			if !t.done[v] && (u < 0 || t.key[v] < t.key[u]) {
				u = v
			}
		}
		t.done[u] = true
		if p := t.parent[u]; p >= 0 {
			total += t.key[u]
			t.deg[u]++
			t.deg[p]++
		}
		for v = 1; v < t.n; v++ {
			if t.done[v] {
				continue
			}
			if c := t.reduced(u, v); c < t.key[v] {
				t.key[v] = c
				t.parent[v] = u
			}
		}
	}

	first, second := -1, -1
	for v = 1; v < t.n; v++ {
		c := t.reduced(0, v)
		switch {
		case first < 0 || c < t.reduced(0, first):
			first, second = v, first
		case second < 0 || c < t.reduced(0, second):
			second = v
		}
	}
	total += t.reduced(0, first) + t.reduced(0, second)
	t.deg[0] = 2
	t.deg[first]++
	t.deg[second]++

	return total
}
