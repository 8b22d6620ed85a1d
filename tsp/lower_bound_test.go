package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gatsp/tsp"
)

// TestLowerBound_BelowExact checks admissibility on instances Exact can solve.
func TestLowerBound_BelowExact(t *testing.T) {
	instances := map[string][][2]float64{
		"hexagon": hexagon(),
		"grid": {
			{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
		},
		"scatter": {
			{3, 7}, {12, 1}, {8, 8}, {1, 14}, {19, 4}, {6, 3}, {15, 15}, {10, 11},
		},
	}
	for name, pts := range instances {
		t.Run(name, func(t *testing.T) {
			dist := euclid(pts)
			opt, err := tsp.Exact(dist)
			require.NoError(t, err)

			lb, err := tsp.LowerBound(context.Background(), dist, tsp.DefaultBoundOptions())
			require.NoError(t, err)
			assert.LessOrEqual(t, lb, opt.Cost+1e-9)
			assert.Positive(t, lb)

			withUpper := tsp.DefaultBoundOptions()
			withUpper.Upper = opt.Cost
			lbU, err := tsp.LowerBound(context.Background(), dist, withUpper)
			require.NoError(t, err)
			assert.LessOrEqual(t, lbU, opt.Cost+1e-9)
		})
	}
}

// TestLowerBound_ConvexPolygonIsTight: the hull tour is a 1-tree at π = 0.
func TestLowerBound_ConvexPolygonIsTight(t *testing.T) {
	pts := make([][2]float64, 10)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / 10
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}
	dist := euclid(pts)
	opt, err := tsp.Exact(dist)
	require.NoError(t, err)

	lb, err := tsp.LowerBound(context.Background(), dist, tsp.DefaultBoundOptions())
	require.NoError(t, err)
	assert.InDelta(t, opt.Cost, lb, 1e-6)
}

// TestLowerBound_SmallAndErrors covers trivial sizes and bad input.
func TestLowerBound_SmallAndErrors(t *testing.T) {
	lb, err := tsp.LowerBound(context.Background(), euclid([][2]float64{{0, 0}}), tsp.DefaultBoundOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, lb)

	lb, err = tsp.LowerBound(context.Background(), euclid([][2]float64{{0, 0}, {3, 4}}), tsp.DefaultBoundOptions())
	require.NoError(t, err)
	assert.Equal(t, 10.0, lb)

	_, err = tsp.LowerBound(context.Background(), nil, tsp.DefaultBoundOptions())
	assert.ErrorIs(t, err, tsp.ErrEmpty)

	bad := mat.NewSymDense(3, []float64{0, -1, 2, -1, 0, 1, 2, 1, 0})
	_, err = tsp.LowerBound(context.Background(), bad, tsp.DefaultBoundOptions())
	assert.ErrorIs(t, err, tsp.ErrNegativeWeight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tsp.LowerBound(ctx, euclid(hexagon()), tsp.DefaultBoundOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
