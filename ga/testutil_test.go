// Package ga_test provides helpers shared across *_test.go files in this package.
package ga_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
)

const (
	// seedDet is the deterministic seed used by tests that need a fixed stream.
	seedDet = int64(42)

	// epsTiny is the tolerance for floating-point comparisons of lengths.
	epsTiny = 1e-9
)

// circleRegistry places n cities on a circle of radius 100, in scrambled
// angular order so that the identity order is not already optimal.
func circleRegistry(n int) *city.Registry {
	reg := city.NewRegistry()
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64((i*7)%n) / float64(n)
		_ = reg.Add(city.New(100+100*math.Cos(th), 100+100*math.Sin(th)))
	}
	return reg
}

// squareRegistry is the 5-city instance of the end-to-end scenario.
func squareRegistry() *city.Registry {
	return city.NewRegistry(
		city.New(0, 0), city.New(0, 1), city.New(1, 1), city.New(1, 0), city.New(0, 0.5),
	)
}

// tourFromIndices builds a complete tour visiting reg in the given index order.
func tourFromIndices(t *testing.T, reg *city.Registry, order ...int) *ga.Tour {
	t.Helper()
	tour := ga.NewTour(reg)
	for pos, idx := range order {
		c, err := reg.Get(idx)
		require.NoError(t, err)
		require.NoError(t, tour.Set(pos, c))
	}
	return tour
}

// requirePermutation fails unless tour is a permutation of its registry.
func requirePermutation(t *testing.T, tour *ga.Tour) {
	t.Helper()
	require.NotNil(t, tour)
	require.True(t, tour.Complete(), "tour has unset slots: %s", tour)
	require.NoError(t, tour.Validate(), "tour is not a permutation: %s", tour)
}

// indices returns the registry order of tour, failing the test on error.
func indices(t *testing.T, tour *ga.Tour) []int {
	t.Helper()
	idx, err := tour.Indices()
	require.NoError(t, err)
	return idx
}
