package ga

import "math/rand/v2"

// mutate visits every position i and, with probability MutationRate, swaps
// it with a uniformly drawn position j (j == i is a no-op). Swaps preserve
// the permutation, so a valid tour stays valid.
//
// Complexity: O(n).
func (e *Engine) mutate(t *Tour, rng *rand.Rand) {
	var (
		n    = t.Size()
		rate = e.opts.MutationRate
		i, j int
	)
	for i = 0; i < n; i++ {
		if rng.Float64() < rate {
			j = rng.IntN(n)
			t.swap(i, j)
		}
	}
}
