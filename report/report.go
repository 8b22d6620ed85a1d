package report

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/gatsp/ga"
)

// ErrNoRuns indicates an empty set of lengths or runs.
var ErrNoRuns = errors.New("report: no runs")

// Run is the outcome of one independent solve.
type Run struct {
	Index           int     `json:"run"`
	Seed            int64   `json:"seed"`
	Generations     int     `json:"generations"`
	InitialDistance float64 `json:"initial_distance"`
	FinalDistance   float64 `json:"final_distance"`
	Solution        string  `json:"solution"`
	Order           []int   `json:"order"`

	// Polished is set when the final tour was improved by 2-opt.
	Polished         []int   `json:"polished,omitempty"`
	PolishedDistance float64 `json:"polished_distance,omitempty"`

	// History is the per-generation convergence of the run. It is part of
	// the JSON report only.
	History []ga.GenerationStats `json:"history,omitempty"`
}

// Best returns the shortest length the run produced.
func (r Run) Best() float64 {
	if r.Polished != nil && r.PolishedDistance < r.FinalDistance {
		return r.PolishedDistance
	}

	return r.FinalDistance
}

// NewRun converts a solve result. The result must carry a final tour.
//
// Errors: ga.ErrNilTour, tour index errors.
func NewRun(index int, seed int64, res ga.Result) (Run, error) {
	if res.Best == nil {
		return Run{}, ga.ErrNilTour
	}
	order, err := res.Best.Indices()
	if err != nil {
		return Run{}, err
	}

	return Run{
		Index:            index,
		Seed:             seed,
		Generations:      res.Generations,
		InitialDistance:  res.InitialBest,
		FinalDistance:    res.BestLength,
		Solution:         res.Best.String(),
		Order:            order,
		Polished:         res.Polished,
		PolishedDistance: res.PolishedLength,
		History:          res.History,
	}, nil
}

// Summary describes the distribution of the best length over runs.
type Summary struct {
	Runs   int     `json:"runs"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	StdDev float64 `json:"stddev"`
}

// Summarize computes a Summary of lengths. StdDev is the sample deviation;
// a single run has StdDev 0 and P90 equal to its length.
//
// Errors: ErrNoRuns, wrapped montanaflynn/stats errors.
func Summarize(lengths []float64) (Summary, error) {
	if len(lengths) == 0 {
		return Summary{}, ErrNoRuns
	}

	var (
		data = stats.Float64Data(lengths)
		s    = Summary{Runs: len(lengths)}
		err  error
	)
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("report: min: %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("report: max: %w", err)
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("report: mean: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("report: median: %w", err)
	}
	if len(lengths) == 1 {
		s.P90 = lengths[0]
		return s, nil
	}
	if s.P90, err = data.Percentile(90); err != nil {
		return Summary{}, fmt.Errorf("report: p90: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return Summary{}, fmt.Errorf("report: stddev: %w", err)
	}

	return s, nil
}

// Report groups the runs of one instance.
type Report struct {
	Instance string   `json:"instance"`
	Cities   int      `json:"cities"`
	Runs     []Run    `json:"runs"`
	Summary  *Summary `json:"summary,omitempty"`

	// Optimum is the exact optimum when it was computed.
	Optimum *float64 `json:"optimum,omitempty"`

	// LowerBound is a proven lower bound on the optimum, for instances too
	// large to solve exactly.
	LowerBound *float64 `json:"lower_bound,omitempty"`

	// WeightType is the EDGE_WEIGHT_TYPE the instance file declared. Every
	// length in the report is an unrounded Euclidean distance regardless, so
	// published optima for the declared metric are not directly comparable.
	WeightType string `json:"edge_weight_type,omitempty"`
}

// Best returns the shortest length over all runs.
func (r *Report) Best() float64 {
	best := r.Runs[0].Best()
	for _, run := range r.Runs[1:] {
		best = min(best, run.Best())
	}

	return best
}

// New builds a Report and, for more than one run, its Summary over Run.Best.
//
// Errors: ErrNoRuns, Summarize errors.
func New(instance string, cities int, runs []Run) (*Report, error) {
	if len(runs) == 0 {
		return nil, ErrNoRuns
	}
	r := &Report{Instance: instance, Cities: cities, Runs: runs}
	if len(runs) > 1 {
		best := make([]float64, len(runs))
		for i, run := range runs {
			best[i] = run.Best()
		}
		s, err := Summarize(best)
		if err != nil {
			return nil, err
		}
		r.Summary = &s
	}

	return r, nil
}
