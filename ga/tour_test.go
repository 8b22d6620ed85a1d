package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
)

// TestTour_TwoCityClosedLength checks the out-and-back edge is counted twice.
func TestTour_TwoCityClosedLength(t *testing.T) {
	reg := city.NewRegistry(city.New(0, 0), city.New(3, 4))
	tour := tourFromIndices(t, reg, 0, 1)

	assert.Equal(t, 10.0, tour.Length())
	assert.Equal(t, 0.1, tour.Fitness())
}

// TestTour_DegenerateSizes documents the zero-length policy.
func TestTour_DegenerateSizes(t *testing.T) {
	empty := ga.NewTour(city.NewRegistry())
	assert.Equal(t, 0.0, empty.Length())
	assert.True(t, math.IsInf(empty.Fitness(), 1))

	single := tourFromIndices(t, city.NewRegistry(city.New(5, 5)), 0)
	assert.Equal(t, 0.0, single.Length())
	assert.True(t, math.IsInf(single.Fitness(), 1))

	// Two distinct cities at the same point: a real, cached zero length.
	same := tourFromIndices(t, city.NewRegistry(city.New(1, 1), city.New(1, 1)), 1, 0)
	assert.Equal(t, 0.0, same.Length())
	assert.True(t, math.IsInf(same.Fitness(), 1))
}

// TestTour_CacheCorrectness covers repeated reads and invalidation on Set.
func TestTour_CacheCorrectness(t *testing.T) {
	reg := city.NewRegistry(city.New(0, 0), city.New(0, 1), city.New(1, 1), city.New(1, 0))
	tour := tourFromIndices(t, reg, 0, 2, 1, 3) // crossing order

	first := tour.Length()
	second := tour.Length()
	require.Equal(t, math.Float64bits(first), math.Float64bits(second), "cached reads must be bit-identical")
	assert.InDelta(t, 2+2*math.Sqrt2, first, epsTiny)

	c1, _ := reg.Get(1)
	c2, _ := reg.Get(2)
	require.NoError(t, tour.Set(1, c1))
	require.NoError(t, tour.Set(2, c2))
	assert.InDelta(t, 4.0, tour.Length(), epsTiny, "Set must invalidate the cached length")
	assert.InDelta(t, 0.25, tour.Fitness(), epsTiny, "Set must invalidate the cached fitness")

	require.NoError(t, tour.Swap(1, 2))
	assert.InDelta(t, 2+2*math.Sqrt2, tour.Length(), epsTiny, "Swap must invalidate the cache")
}

// TestTour_FitnessMonotonicity checks shorter ⇔ fitter on random pairs.
func TestTour_FitnessMonotonicity(t *testing.T) {
	reg := circleRegistry(12)
	rng := ga.NewRand(seedDet)
	for i := 0; i < 200; i++ {
		a := ga.RandomTour(reg, rng)
		b := ga.RandomTour(reg, rng)
		require.Equal(t, a.Length() < b.Length(), a.Fitness() > b.Fitness())
		require.Equal(t, a.Length() > b.Length(), a.Fitness() < b.Fitness())
	}
}

// TestTour_RandomIsPermutation checks RandomTour covers every city once.
func TestTour_RandomIsPermutation(t *testing.T) {
	rng := ga.NewRand(seedDet)
	for n := 0; n <= 12; n++ {
		reg := circleRegistry(n)
		for i := 0; i < 20; i++ {
			tour := ga.RandomTour(reg, rng)
			require.Equal(t, n, tour.Size())
			requirePermutation(t, tour)
		}
	}
}

// TestTour_RandomDoesNotAliasRegistry ensures shuffling never reorders the registry.
func TestTour_RandomDoesNotAliasRegistry(t *testing.T) {
	reg := circleRegistry(8)
	before := reg.Cities()
	_ = ga.RandomTour(reg, ga.NewRand(seedDet))
	assert.Equal(t, before, reg.Cities())
}

// TestTour_Bounds checks out-of-range access fails fast.
func TestTour_Bounds(t *testing.T) {
	reg := circleRegistry(3)
	tour := ga.NewTour(reg)

	_, err := tour.Get(3)
	assert.ErrorIs(t, err, ga.ErrPositionOutOfRange)
	_, err = tour.Get(-1)
	assert.ErrorIs(t, err, ga.ErrPositionOutOfRange)
	assert.ErrorIs(t, tour.Set(3, city.New(0, 0)), ga.ErrPositionOutOfRange)
	assert.ErrorIs(t, tour.Swap(0, 3), ga.ErrPositionOutOfRange)
}

// TestTour_ContainsIsIdentity checks membership ignores equal coordinates.
func TestTour_ContainsIsIdentity(t *testing.T) {
	a := city.New(1, 2)
	reg := city.NewRegistry(a, city.New(3, 4))
	tour := tourFromIndices(t, reg, 0)

	assert.True(t, tour.Contains(a))
	assert.False(t, tour.Contains(city.New(1, 2)))
	assert.False(t, tour.Complete())
	_, err := tour.Indices()
	assert.ErrorIs(t, err, ga.ErrIncompleteTour)
}

// TestTour_ValidateRejectsDuplicates checks the permutation check.
func TestTour_ValidateRejectsDuplicates(t *testing.T) {
	reg := circleRegistry(3)
	tour := tourFromIndices(t, reg, 0, 1, 1)
	assert.ErrorIs(t, tour.Validate(), ga.ErrNotPermutation)

	foreign := tourFromIndices(t, reg, 0, 1, 2)
	require.NoError(t, foreign.Set(2, city.New(0, 0)))
	assert.ErrorIs(t, foreign.Validate(), ga.ErrNotPermutation)
}

// TestTour_StringAndClone covers rendering and independent copies.
func TestTour_StringAndClone(t *testing.T) {
	reg := city.NewRegistry(city.New(0, 0), city.New(3, 4))
	tour := tourFromIndices(t, reg, 1, 0)
	assert.Equal(t, "|3, 4|0, 0|", tour.String())

	cp := tour.Clone()
	require.NoError(t, cp.Swap(0, 1))
	assert.Equal(t, "|3, 4|0, 0|", tour.String(), "clone must not share slots")
	assert.Equal(t, "|0, 0|3, 4|", cp.String())
	assert.Equal(t, "|-|-|", ga.NewTour(reg).String())
}
