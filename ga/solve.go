// Package ga - run driver.
//
// Solve is the generational loop around Engine.Evolve:
//
//	state       = current Population
//	transition  = Evolve
//	initial     = random Population of SolveOptions.PopulationSize tours
//	termination = SolveOptions.Generations calls, or ctx cancellation
//
// The driver records per-generation statistics, reports them through an
// optional hook, and can polish the final winner with tsp.TwoOpt.
package ga

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/tsp"
)

// Defaults of SolveOptions.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 100
)

// SolveOptions configures Solve.
type SolveOptions struct {
	// Engine configures selection, crossover and mutation. Engine.PopulationSize
	// is overwritten with PopulationSize.
	Engine Options

	// PopulationSize is the number of tours per generation.
	PopulationSize int

	// Generations is the number of Evolve calls.
	Generations int

	// Polish runs 2-opt on the final fittest tour.
	Polish bool

	// PolishOptions configures the 2-opt pass.
	PolishOptions tsp.Options

	// OnGeneration, if set, is called with the statistics of the initial
	// population and of every generation, in order.
	OnGeneration func(GenerationStats)
}

// DefaultSolveOptions returns 100 generations of 50 tours with DefaultOptions.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Engine:         DefaultOptions(),
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		PolishOptions:  tsp.DefaultOptions(),
	}
}

// Result is the outcome of Solve.
type Result struct {
	// InitialBest is the length of the fittest initial tour.
	InitialBest float64

	// Best is the fittest tour of the last generation reached.
	Best *Tour

	// BestLength is Best.Length().
	BestLength float64

	// Generations is the number of completed Evolve calls.
	Generations int

	// History holds one entry per generation, starting with the initial population.
	History []GenerationStats

	// Polished is the 2-opt improved order of Best as registry indices
	// (nil unless SolveOptions.Polish).
	Polished []int

	// PolishedLength is the closed-loop length of Polished.
	PolishedLength float64
}

// Solve evolves a random population over reg for opts.Generations
// generations and returns the fittest tour of the final generation.
//
// ctx is checked between generations. On cancellation Solve returns the
// partial result together with an error wrapping ctx.Err().
//
// Errors: ErrGenerations, ErrPopulationSize, NewEngine and Evolve errors,
// city.ErrEmptyRegistry or tsp errors when polishing.
//
// Complexity: O(G·P·(k + n)) plus O(iter·n²) for the polish.
func Solve(ctx context.Context, reg *city.Registry, opts SolveOptions) (Result, error) {
	if opts.Generations < 0 {
		return Result{}, ErrGenerations
	}
	if opts.PopulationSize <= 0 {
		return Result{}, ErrPopulationSize
	}
	engOpts := opts.Engine
	engOpts.PopulationSize = opts.PopulationSize

	eng, err := NewEngine(reg, engOpts)
	if err != nil {
		return Result{}, err
	}
	pop, err := eng.NewPopulation(opts.PopulationSize, true)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.History = make([]GenerationStats, 0, opts.Generations+1)
	res.InitialBest = pop.Fittest().Length()
	record := func(gen int) {
		gs := Stats(gen, pop)
		res.History = append(res.History, gs)
		if opts.OnGeneration != nil {
			opts.OnGeneration(gs)
		}
	}
	record(0)

	for g := 1; g <= opts.Generations; g++ {
		if err = ctx.Err(); err != nil {
			res.finish(pop)
			return res, fmt.Errorf("ga: solve interrupted before generation %d: %w", g, err)
		}
		pop, err = eng.Evolve(pop)
		if err != nil {
			return Result{}, err
		}
		res.Generations = g
		record(g)
	}
	res.finish(pop)

	if opts.Polish && reg.Size() > 0 {
		if err = res.polish(ctx, reg, opts.PolishOptions); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (r *Result) finish(pop *Population) {
	r.Best = pop.Fittest()
	r.BestLength = r.Best.Length()
}

func (r *Result) polish(ctx context.Context, reg *city.Registry, opts tsp.Options) error {
	dist, err := reg.DistanceMatrix()
	if err != nil {
		return err
	}
	perm, err := r.Best.Indices()
	if err != nil {
		return err
	}
	r.Polished, r.PolishedLength, err = tsp.TwoOpt(ctx, dist, perm, opts)
	if err != nil {
		return fmt.Errorf("ga: polish: %w", err)
	}

	return nil
}
