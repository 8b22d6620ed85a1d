package ga

import (
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/gatsp/city"
)

// Engine holds the operator configuration and random stream of one run.
//
// The operators themselves keep no state between calls; the only mutable
// field is the RNG, which makes an Engine unsafe for concurrent use.
type Engine struct {
	reg  *city.Registry
	opts Options
	rng  *rand.Rand
}

// NewEngine validates opts and binds an engine to reg. The registry is
// frozen so that its size and indices stay fixed for the rest of the run.
//
// Errors: ErrNilRegistry and those of Options.Validate.
func NewEngine(reg *city.Registry, opts Options) (*Engine, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers == 0 {
		opts.Workers = DefaultWorkers
	}
	reg.Freeze()

	return &Engine{reg: reg, opts: opts, rng: NewRand(opts.Seed)}, nil
}

// Options returns the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// Registry returns the registry the engine is bound to.
func (e *Engine) Registry() *city.Registry { return e.reg }

// NewPopulation is NewPopulation over the engine registry and random stream.
func (e *Engine) NewPopulation(size int, initialise bool) (*Population, error) {
	return NewPopulation(e.reg, size, initialise, e.rng)
}

// Evolve produces the next generation from pop:
//
//  1. allocate an empty population of the same size;
//  2. with elitism, slot 0 receives pop.Fittest() by reference and breeding
//     starts at slot 1;
//  3. every remaining slot receives the ordered-crossover child of two
//     independent tournament winners, mutated in place;
//  4. the new population is returned. pop itself is never modified.
//
// A child is private to its slot, so mutating it right after breeding gives
// the same generation as a separate mutation pass over the filled slots.
//
// Each offspring slot draws from its own stream derived from a single value
// of the engine RNG, so the result does not depend on Options.Workers.
//
// Errors: ErrNilPopulation, ErrIncompletePopulation, ErrRegistryMismatch,
// ErrTournamentSize (tournament larger than pop), crossover errors.
//
// Complexity: O(size·(k + n)) with k the tournament size and n the tour size.
func (e *Engine) Evolve(pop *Population) (*Population, error) {
	if err := e.checkPopulation(pop); err != nil {
		return nil, err
	}

	var (
		size   = pop.Size()
		next   = emptyPopulation(size)
		offset int
	)

	// Warm every cache so concurrent tournaments only read parent state.
	for _, t := range pop.tours {
		t.Fitness()
	}

	if e.opts.Elitism {
		next.tours[0] = pop.Fittest()
		offset = 1
	}

	base := e.rng.Uint64()
	streams := make([]*rand.Rand, size)
	for i := offset; i < size; i++ {
		streams[i] = deriveRNG(base, uint64(i))
	}

	err := e.forEachSlot(offset, size, func(i int) error {
		p1 := e.tournament(pop, streams[i])
		p2 := e.tournament(pop, streams[i])
		child, err := e.crossover(p1, p2, streams[i])
		if err != nil {
			return err
		}
		e.mutate(child, streams[i])
		next.tours[i] = child

		return nil
	})
	if err != nil {
		return nil, err
	}

	return next, nil
}

func (e *Engine) checkPopulation(pop *Population) error {
	if pop == nil || pop.Size() == 0 {
		return ErrNilPopulation
	}
	if !pop.Complete() {
		return ErrIncompletePopulation
	}
	if e.opts.TournamentSize > pop.Size() {
		return ErrTournamentSize
	}
	for _, t := range pop.tours {
		if t.reg != e.reg {
			return ErrRegistryMismatch
		}
		if t.Size() != e.reg.Size() {
			return ErrSizeMismatch
		}
	}

	return nil
}

// forEachSlot runs fn for every slot in [from, to). With more than one
// worker the range is split into contiguous chunks run on a conc pool;
// fn must only touch state owned by its slot.
func (e *Engine) forEachSlot(from, to int, fn func(i int) error) error {
	var (
		n       = to - from
		workers = e.opts.Workers
	)
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		for i := from; i < to; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}
	if workers > n {
		workers = n
	}

	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	chunk := (n + workers - 1) / workers
	for lo := from; lo < to; lo += chunk {
		hi := min(lo+chunk, to)
		p.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return p.Wait()
}

// TournamentSelection draws Options.TournamentSize tours from pop uniformly
// with replacement and returns the fittest of the sample.
//
// Errors: those of Evolve's population checks (ErrNilPopulation,
// ErrIncompletePopulation, ErrTournamentSize, ErrRegistryMismatch,
// ErrSizeMismatch).
func (e *Engine) TournamentSelection(pop *Population) (*Tour, error) {
	if err := e.checkPopulation(pop); err != nil {
		return nil, err
	}

	return e.tournament(pop, e.rng), nil
}

// Crossover breeds one child of p1 and p2 with cut points drawn from the
// engine stream; see CrossoverAt.
func (e *Engine) Crossover(p1, p2 *Tour) (*Tour, error) {
	return e.crossover(p1, p2, e.rng)
}

// Mutate applies swap mutation to t in place; see Options.MutationRate.
//
// Errors: ErrNilTour, ErrRegistryMismatch, ErrSizeMismatch.
func (e *Engine) Mutate(t *Tour) error {
	switch {
	case t == nil:
		return ErrNilTour
	case t.reg != e.reg:
		return ErrRegistryMismatch
	case t.Size() != e.reg.Size():
		return ErrSizeMismatch
	}
	e.mutate(t, e.rng)

	return nil
}
