package city_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/city"
)

// TestRegistry_AddGet covers insertion order, duplicates and bounds.
func TestRegistry_AddGet(t *testing.T) {
	reg := city.NewRegistry()
	a := city.New(1, 1)
	dup := city.New(1, 1)

	require.NoError(t, reg.Add(a))
	require.NoError(t, reg.Add(dup), "coordinate duplicates are not rejected")
	require.Equal(t, 2, reg.Size())

	got, err := reg.Get(1)
	require.NoError(t, err)
	assert.Same(t, dup, got)

	_, err = reg.Get(2)
	assert.ErrorIs(t, err, city.ErrIndexOutOfRange)
	_, err = reg.Get(-1)
	assert.ErrorIs(t, err, city.ErrIndexOutOfRange)

	assert.ErrorIs(t, reg.Add(nil), city.ErrNilCity)
}

// TestRegistry_NoSharedState guards against a shared default collection.
func TestRegistry_NoSharedState(t *testing.T) {
	r1 := city.NewRegistry()
	r2 := city.NewRegistry()
	require.NoError(t, r1.Add(city.New(0, 0)))

	assert.Equal(t, 1, r1.Size())
	assert.Equal(t, 0, r2.Size())
}

// TestRegistry_Freeze verifies a frozen registry keeps its size.
func TestRegistry_Freeze(t *testing.T) {
	reg := city.NewRegistry(city.New(0, 0))
	reg.Freeze()

	assert.True(t, reg.Frozen())
	assert.ErrorIs(t, reg.Add(city.New(1, 1)), city.ErrRegistryFrozen)
	assert.Equal(t, 1, reg.Size())
}

// TestRegistry_CitiesIsCopy checks that the returned slice is detached.
func TestRegistry_CitiesIsCopy(t *testing.T) {
	a, b := city.New(0, 0), city.New(1, 0)
	reg := city.NewRegistry(a, nil, b)
	require.Equal(t, 2, reg.Size(), "nil entries are skipped")

	cs := reg.Cities()
	cs[0] = b
	got, _ := reg.Get(0)
	assert.Same(t, a, got)
	assert.Equal(t, 1, reg.IndexOf(b))
	assert.Equal(t, -1, reg.IndexOf(city.New(0, 0)), "lookup is by identity")
}

// TestRegistry_DistanceMatrix checks symmetry and a known entry.
func TestRegistry_DistanceMatrix(t *testing.T) {
	reg := city.NewRegistry(city.New(0, 0), city.New(3, 4), city.New(6, 8))
	m, err := reg.DistanceMatrix()
	require.NoError(t, err)

	require.Equal(t, 3, m.SymmetricDim())
	assert.Equal(t, 5.0, m.At(0, 1))
	assert.Equal(t, 5.0, m.At(1, 0))
	assert.Equal(t, 10.0, m.At(0, 2))
	assert.Equal(t, 0.0, m.At(2, 2))

	_, err = city.NewRegistry().DistanceMatrix()
	assert.ErrorIs(t, err, city.ErrEmptyRegistry)
}
