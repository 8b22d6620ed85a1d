// Package tsp provides matrix-based TSP helpers used around the genetic
// optimizer: permutation validation, closed-loop tour cost, a 2-opt local
// search to polish a GA result, and two references to judge it by.
//
// All functions take a symmetric distance matrix (gonum mat.Symmetric, as
// built by city.Registry.DistanceMatrix) and an *open* permutation of
// {0..n-1}: the closing edge perm[n-1]→perm[0] is implied.
//
//	TwoOpt     — first-improvement 2-opt.          O(iter·n²)
//	Exact      — Held–Karp dynamic programming.     O(n²·2ⁿ) time, O(n·2ⁿ) memory,
//	             n ≤ MaxExactCities.
//	LowerBound — Held–Karp 1-tree bound with        O(iters·n²)
//	             subgradient ascent; any n.
//
// No logging and no panics on user input; only the sentinels in types.go.
package tsp
