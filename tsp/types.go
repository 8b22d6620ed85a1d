package tsp

import "errors"

// MaxExactCities bounds Exact; the DP table holds n·2ⁿ entries.
const MaxExactCities = 16

// DefaultEps is the improvement tolerance of TwoOpt.
const DefaultEps = 1e-12

var (
	// ErrDimensionMismatch indicates a permutation or matrix of the wrong shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrEmpty indicates a nil or empty distance matrix.
	ErrEmpty = errors.New("tsp: empty distance matrix")

	// ErrTooLarge indicates an instance beyond MaxExactCities for Exact.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")

	// ErrNegativeWeight indicates a negative or NaN distance.
	ErrNegativeWeight = errors.New("tsp: negative or NaN distance")
)

// Result holds the outcome of a solver.
type Result struct {
	// Tour is an open permutation of {0..n-1} starting at 0.
	Tour []int

	// Cost is the total closed-loop distance, rounded to 1e-9.
	Cost float64
}

// Options configures TwoOpt.
type Options struct {
	// Eps is the acceptance tolerance: a move is applied when Δ < −Eps.
	Eps float64

	// MaxIters caps accepted moves; 0 means run to a local optimum.
	MaxIters int
}

// DefaultOptions returns Options{Eps: DefaultEps}.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}
