package ga

import (
	"math/rand/v2"

	"github.com/katalvlaran/gatsp/city"
)

// Population is one generation: a fixed-size sequence of tour slots.
type Population struct {
	tours []*Tour
}

// NewPopulation returns a population of size slots. With initialise set,
// every slot holds a RandomTour over reg drawn from rng; otherwise the slots
// are empty and serve as the scratch buffer of the next generation.
//
// Errors: ErrNilRegistry, ErrPopulationSize.
//
// Complexity: O(size·n) when initialising, O(size) otherwise.
func NewPopulation(reg *city.Registry, size int, initialise bool, rng *rand.Rand) (*Population, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if size <= 0 {
		return nil, ErrPopulationSize
	}
	p := emptyPopulation(size)
	if initialise {
		for i := range p.tours {
			p.tours[i] = RandomTour(reg, rng)
		}
	}

	return p, nil
}

func emptyPopulation(size int) *Population {
	return &Population{tours: make([]*Tour, size)}
}

// Size returns the number of slots.
func (p *Population) Size() int { return len(p.tours) }

// Tour returns the tour at slot i (nil when empty).
//
// Errors: ErrIndexOutOfRange.
func (p *Population) Tour(i int) (*Tour, error) {
	if i < 0 || i >= len(p.tours) {
		return nil, ErrIndexOutOfRange
	}

	return p.tours[i], nil
}

// Save stores t at slot i.
//
// Errors: ErrIndexOutOfRange, ErrNilTour.
func (p *Population) Save(i int, t *Tour) error {
	if i < 0 || i >= len(p.tours) {
		return ErrIndexOutOfRange
	}
	if t == nil {
		return ErrNilTour
	}
	p.tours[i] = t

	return nil
}

// Tours returns a copy of the slot slice.
func (p *Population) Tours() []*Tour {
	out := make([]*Tour, len(p.tours))
	copy(out, p.tours)

	return out
}

// Complete reports whether every slot holds a tour.
func (p *Population) Complete() bool {
	for _, t := range p.tours {
		if t == nil {
			return false
		}
	}

	return true
}

// Fittest returns the tour with the highest fitness, or nil when every slot
// is empty.
//
// Tie-break: the scan replaces the running best whenever a tour's fitness is
// greater than OR EQUAL to it, so among equally fit tours the one in the
// highest slot wins. Callers may rely on this order.
//
// Complexity: O(size) plus any pending length computations.
func (p *Population) Fittest() *Tour {
	var best *Tour
	for _, t := range p.tours {
		if t == nil {
			continue
		}
		if best == nil || t.Fitness() >= best.Fitness() {
			best = t
		}
	}

	return best
}

// Lengths returns the tour lengths in slot order, skipping empty slots.
func (p *Population) Lengths() []float64 {
	out := make([]float64, 0, len(p.tours))
	for _, t := range p.tours {
		if t != nil {
			out = append(out, t.Length())
		}
	}

	return out
}
