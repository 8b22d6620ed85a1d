package ga

import (
	"errors"
	"math"
)

// Sentinel errors for GA operations.
var (
	// ErrNilRegistry indicates a nil *city.Registry.
	ErrNilRegistry = errors.New("ga: nil registry")

	// ErrNilTour indicates a nil *Tour where a tour is required.
	ErrNilTour = errors.New("ga: nil tour")

	// ErrNilPopulation indicates a nil *Population.
	ErrNilPopulation = errors.New("ga: nil population")

	// ErrPositionOutOfRange indicates a tour position outside [0, Size()).
	ErrPositionOutOfRange = errors.New("ga: tour position out of range")

	// ErrIndexOutOfRange indicates a population slot outside [0, Size()).
	ErrIndexOutOfRange = errors.New("ga: population index out of range")

	// ErrPopulationSize indicates a non-positive population size.
	ErrPopulationSize = errors.New("ga: population size must be positive")

	// ErrMutationRate indicates a mutation rate outside [0,1] or NaN.
	ErrMutationRate = errors.New("ga: mutation rate must be within [0,1]")

	// ErrTournamentSize indicates a tournament size < 1 or above the population size.
	ErrTournamentSize = errors.New("ga: tournament size must be within [1, population size]")

	// ErrWorkers indicates a negative worker count.
	ErrWorkers = errors.New("ga: workers must be non-negative")

	// ErrGenerations indicates a negative generation budget.
	ErrGenerations = errors.New("ga: generations must be non-negative")

	// ErrIncompleteTour indicates a tour with unset slots where a full tour is required.
	ErrIncompleteTour = errors.New("ga: tour has unset positions")

	// ErrIncompletePopulation indicates a population with empty slots.
	ErrIncompletePopulation = errors.New("ga: population has empty slots")

	// ErrSizeMismatch indicates tours of different sizes.
	ErrSizeMismatch = errors.New("ga: tour size mismatch")

	// ErrNotPermutation indicates a tour that is not a permutation of its registry.
	ErrNotPermutation = errors.New("ga: tour is not a permutation of the registry")

	// ErrRegistryMismatch indicates a tour built over a different registry than the engine's.
	ErrRegistryMismatch = errors.New("ga: tour belongs to another registry")
)

// Defaults of Options.
const (
	DefaultMutationRate   = 0.015
	DefaultTournamentSize = 5
	DefaultWorkers        = 1
)

// Options configures an Engine. It is copied at construction and immutable afterwards.
type Options struct {
	// MutationRate is the per-position probability of a swap mutation, in [0,1].
	MutationRate float64

	// TournamentSize is the number of tours drawn (with replacement) per selection.
	TournamentSize int

	// Elitism carries the fittest tour of a generation unchanged into slot 0
	// of the next one.
	Elitism bool

	// PopulationSize, when positive, lets NewEngine reject a TournamentSize
	// larger than the population up front. Evolve checks it again per call.
	PopulationSize int

	// Seed selects the random stream; 0 selects a fixed default seed.
	Seed int64

	// Workers is the number of goroutines Evolve breeds with; 0 means 1.
	Workers int
}

// DefaultOptions returns the classic configuration: mutation rate 0.015,
// tournaments of 5, elitism on, one worker.
func DefaultOptions() Options {
	return Options{
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
		Elitism:        true,
		Workers:        DefaultWorkers,
	}
}

// Validate checks the option ranges.
//
// Errors: ErrMutationRate, ErrTournamentSize, ErrPopulationSize, ErrWorkers.
func (o Options) Validate() error {
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrMutationRate
	}
	if o.TournamentSize < 1 {
		return ErrTournamentSize
	}
	if o.PopulationSize < 0 {
		return ErrPopulationSize
	}
	if o.PopulationSize > 0 && o.TournamentSize > o.PopulationSize {
		return ErrTournamentSize
	}
	if o.Workers < 0 {
		return ErrWorkers
	}

	return nil
}
