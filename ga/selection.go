package ga

import "math/rand/v2"

// tournament samples e.opts.TournamentSize tours with replacement into a
// scratch population, which never becomes part of a generation, and returns
// its Fittest (so ties go to the later draw).
//
// Complexity: O(k).
func (e *Engine) tournament(pop *Population, rng *rand.Rand) *Tour {
	var (
		k       = e.opts.TournamentSize
		n       = len(pop.tours)
		scratch = emptyPopulation(k)
	)
	for i := 0; i < k; i++ {
		scratch.tours[i] = pop.tours[rng.IntN(n)]
	}

	return scratch.Fittest()
}
