package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gatsp/tsp"
)

// makeCycleDist builds dist(i,j)=min(|i-j|, n-|i-j|); the optimum cost is n.
func makeCycleDist(n int) *mat.SymDense {
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Abs(float64(i - j))
			m.SetSym(i, j, math.Min(d, float64(n)-d))
		}
	}
	return m
}

func TestExact_Small4(t *testing.T) {
	res, err := tsp.Exact(makeCycleDist(4))
	require.NoError(t, err)
	require.Len(t, res.Tour, 4)
	require.Equal(t, 0, res.Tour[0])
	require.NoError(t, tsp.ValidatePermutation(res.Tour, 4))
	require.Equal(t, 4.0, res.Cost)
}

func TestExact_Medium8(t *testing.T) {
	dist := makeCycleDist(8)
	res, err := tsp.Exact(dist)
	require.NoError(t, err)
	require.Equal(t, 8.0, res.Cost)

	cost, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, cost, "reconstructed tour must realise the DP cost")
}

func TestExact_Trivial(t *testing.T) {
	res, err := tsp.Exact(mat.NewSymDense(1, nil))
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Tour)
	require.Equal(t, 0.0, res.Cost)
}

func TestExact_Errors(t *testing.T) {
	_, err := tsp.Exact(nil)
	require.ErrorIs(t, err, tsp.ErrEmpty)

	_, err = tsp.Exact(makeCycleDist(tsp.MaxExactCities + 1))
	require.ErrorIs(t, err, tsp.ErrTooLarge)

	bad := makeCycleDist(4)
	bad.SetSym(1, 2, -1)
	_, err = tsp.Exact(bad)
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}
