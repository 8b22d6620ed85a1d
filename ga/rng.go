// Package ga - RNG utilities shared by the genetic operators.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Parallel safety: per-slot streams derived up front, never shared.
//
// Concurrency:
//   - math/rand/v2.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRNG to create independent streams for parallel workers.
package ga

import "math/rand/v2"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// NewRand returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = uint64(seed)
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewPCG(s, splitMix(s)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// Independent runs of the same instance use DeriveSeed(base, run).
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(splitMix(uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)))
}

// splitMix is the SplitMix64 finalizer; see Vigna 2014 for the constants.
// Small input changes produce large, well-distributed output changes.
func splitMix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// deriveRNG creates an independent deterministic stream from a base value
// (drawn once from the engine RNG) and a stream identifier (the slot index).
//
// Complexity: O(1).
func deriveRNG(base uint64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(splitMix(base^(stream+0x9e3779b97f4a7c15)), stream))
}
