package ga_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
)

func newEngine(t *testing.T, reg *city.Registry, mutate func(*ga.Options)) *ga.Engine {
	t.Helper()
	opts := ga.DefaultOptions()
	opts.Seed = seedDet
	if mutate != nil {
		mutate(&opts)
	}
	eng, err := ga.NewEngine(reg, opts)
	require.NoError(t, err)

	return eng
}

// TestCrossoverAt_Grid checks every cut-point pair on random parents.
func TestCrossoverAt_Grid(t *testing.T) {
	const n = 7
	reg := circleRegistry(n)
	rng := ga.NewRand(seedDet)

	for rep := 0; rep < 5; rep++ {
		p1 := ga.RandomTour(reg, rng)
		p2 := ga.RandomTour(reg, rng)
		for start := 0; start < n; start++ {
			for end := 0; end < n; end++ {
				child, err := ga.CrossoverAt(p1, p2, start, end)
				require.NoError(t, err, "start=%d end=%d", start, end)
				requirePermutation(t, child)
				for pos := 0; pos < n; pos++ {
					inSeg := (start < end && pos > start && pos < end) ||
						(start > end && !(pos < start && pos > end))
					if !inSeg {
						continue
					}
					want, _ := p1.Get(pos)
					got, _ := child.Get(pos)
					require.Same(t, want, got, "segment position %d must come from p1", pos)
				}
			}
		}
	}
}

// TestCrossoverAt_KnownChildren pins the fill order for both segment shapes.
func TestCrossoverAt_KnownChildren(t *testing.T) {
	reg := circleRegistry(8)
	p1 := tourFromIndices(t, reg, 0, 1, 2, 3, 4, 5, 6, 7)
	p2 := tourFromIndices(t, reg, 7, 6, 5, 4, 3, 2, 1, 0)

	child, err := ga.CrossoverAt(p1, p2, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 5, 3, 4, 2, 1, 0}, indices(t, child))

	child, err = ga.CrossoverAt(p1, p2, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4, 3, 5, 6, 7}, indices(t, child))

	child, err = ga.CrossoverAt(p1, p2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, indices(t, p2), indices(t, child), "an empty segment copies p2")
}

// TestCrossoverAt_Errors covers the argument checks.
func TestCrossoverAt_Errors(t *testing.T) {
	reg := circleRegistry(4)
	full := tourFromIndices(t, reg, 0, 1, 2, 3)
	partial := tourFromIndices(t, reg, 0, 1)
	small := tourFromIndices(t, circleRegistry(3), 0, 1, 2)

	_, err := ga.CrossoverAt(nil, full, 0, 1)
	assert.ErrorIs(t, err, ga.ErrNilTour)
	_, err = ga.CrossoverAt(full, small, 0, 1)
	assert.ErrorIs(t, err, ga.ErrSizeMismatch)
	_, err = ga.CrossoverAt(full, partial, 0, 1)
	assert.ErrorIs(t, err, ga.ErrIncompleteTour)
	_, err = ga.CrossoverAt(full, full, 0, 4)
	assert.ErrorIs(t, err, ga.ErrPositionOutOfRange)
	_, err = ga.CrossoverAt(full, full, -1, 2)
	assert.ErrorIs(t, err, ga.ErrPositionOutOfRange)

	dup := tourFromIndices(t, reg, 0, 0, 1, 2)
	_, err = ga.CrossoverAt(full, dup, 0, 2)
	assert.ErrorIs(t, err, ga.ErrNotPermutation)
}

// TestEngineCrossover_Random breeds many children with random cut points.
func TestEngineCrossover_Random(t *testing.T) {
	reg := circleRegistry(10)
	eng := newEngine(t, reg, nil)
	rng := ga.NewRand(seedDet + 1)

	for i := 0; i < 1000; i++ {
		child, err := eng.Crossover(ga.RandomTour(reg, rng), ga.RandomTour(reg, rng))
		require.NoError(t, err)
		requirePermutation(t, child)
	}
}

// TestMutate_RateZeroIsNoop leaves the order and cache untouched.
func TestMutate_RateZeroIsNoop(t *testing.T) {
	reg := circleRegistry(10)
	eng := newEngine(t, reg, func(o *ga.Options) { o.MutationRate = 0 })
	tour := ga.RandomTour(reg, ga.NewRand(seedDet))
	before := indices(t, tour)
	length := tour.Length()

	for i := 0; i < 100; i++ {
		require.NoError(t, eng.Mutate(tour))
	}
	assert.Equal(t, before, indices(t, tour))
	assert.Equal(t, length, tour.Length())
}

// TestMutate_KeepsPermutation runs full-rate mutation.
func TestMutate_KeepsPermutation(t *testing.T) {
	reg := circleRegistry(10)
	eng := newEngine(t, reg, func(o *ga.Options) { o.MutationRate = 1 })
	tour := ga.RandomTour(reg, ga.NewRand(seedDet))
	before := indices(t, tour)

	changed := false
	for i := 0; i < 50; i++ {
		require.NoError(t, eng.Mutate(tour))
		requirePermutation(t, tour)
		changed = changed || !assert.ObjectsAreEqual(before, indices(t, tour))
	}
	assert.True(t, changed, "rate 1 should reorder a 10-city tour")
}

// TestTournamentSelection_ReturnsMember checks winners come from the population
// and the best tour wins at least sometimes.
func TestTournamentSelection_ReturnsMember(t *testing.T) {
	reg := circleRegistry(8)
	eng := newEngine(t, reg, func(o *ga.Options) { o.TournamentSize = 3 })
	pop, err := eng.NewPopulation(3, true)
	require.NoError(t, err)

	members := make(map[*ga.Tour]bool, pop.Size())
	for _, tour := range pop.Tours() {
		members[tour] = true
	}
	best := pop.Fittest()

	sawBest := false
	for i := 0; i < 200; i++ {
		w, err := eng.TournamentSelection(pop)
		require.NoError(t, err)
		require.True(t, members[w])
		sawBest = sawBest || w == best
	}
	assert.True(t, sawBest)
}

// TestTournamentSelection_RejectsBadPopulations fails fast instead of
// returning nil or panicking.
func TestTournamentSelection_RejectsBadPopulations(t *testing.T) {
	reg := circleRegistry(6)
	eng := newEngine(t, reg, func(o *ga.Options) { o.TournamentSize = 2 })

	unfilled, err := eng.NewPopulation(4, false)
	require.NoError(t, err)
	foreign, err := ga.NewPopulation(circleRegistry(6), 4, true, ga.NewRand(seedDet))
	require.NoError(t, err)
	small, err := eng.NewPopulation(1, true)
	require.NoError(t, err)

	cases := []struct {
		name string
		pop  *ga.Population
		want error
	}{
		{"nil", nil, ga.ErrNilPopulation},
		{"zero value", &ga.Population{}, ga.ErrNilPopulation},
		{"unfilled", unfilled, ga.ErrIncompletePopulation},
		{"foreign registry", foreign, ga.ErrRegistryMismatch},
		{"smaller than tournament", small, ga.ErrTournamentSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := eng.TournamentSelection(tc.pop)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, w)
		})
	}
}

// TestMutate_RejectsBadTours leaves foreign tours untouched.
func TestMutate_RejectsBadTours(t *testing.T) {
	reg := circleRegistry(6)
	eng := newEngine(t, reg, func(o *ga.Options) { o.MutationRate = 1 })

	assert.ErrorIs(t, eng.Mutate(nil), ga.ErrNilTour)

	other := circleRegistry(6)
	foreign := ga.RandomTour(other, ga.NewRand(seedDet))
	before := indices(t, foreign)
	assert.ErrorIs(t, eng.Mutate(foreign), ga.ErrRegistryMismatch)
	assert.Equal(t, before, indices(t, foreign))
}
