package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes the tour lengths of one generation.
type GenerationStats struct {
	// Generation is 0 for the initial population and i after the i-th Evolve.
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stddev"`
	Worst      float64 `json:"worst"`
}

// Stats computes GenerationStats for pop. StdDev is the unbiased sample
// deviation and 0 for populations of a single tour.
//
// Complexity: O(size) plus any pending length computations.
func Stats(generation int, pop *Population) GenerationStats {
	lengths := pop.Lengths()
	gs := GenerationStats{Generation: generation}
	if len(lengths) == 0 {
		return gs
	}

	gs.Best = floats.Min(lengths)
	gs.Worst = floats.Max(lengths)
	if len(lengths) == 1 {
		gs.Mean = lengths[0]
		return gs
	}
	gs.Mean, gs.StdDev = stat.MeanStdDev(lengths, nil)

	return gs
}
