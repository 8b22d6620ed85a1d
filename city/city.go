package city

import (
	"math"
	"math/rand/v2"
	"strconv"
)

// RandomExtent is the exclusive upper bound of each axis for randomly placed cities.
const RandomExtent = 200

// City is an immutable point in the plane.
//
// The coordinates are unexported so a City cannot change after construction;
// tours hold *City and rely on it never moving.
type City struct {
	x float64
	y float64
}

// New returns a city at (x, y).
func New(x, y float64) *City {
	return &City{x: x, y: y}
}

// Random returns a city whose axes are drawn uniformly in [0, RandomExtent)
// and truncated to whole numbers.
func Random(rng *rand.Rand) *City {
	return &City{x: randomAxis(rng), y: randomAxis(rng)}
}

// FromCoords builds a city from optional coordinates. A nil axis is sampled
// exactly as Random does; a non-nil axis is used verbatim. The x axis is
// drawn before the y axis so seeded runs are reproducible.
func FromCoords(x, y *float64, rng *rand.Rand) *City {
	var c City
	if x != nil {
		c.x = *x
	} else {
		c.x = randomAxis(rng)
	}
	if y != nil {
		c.y = *y
	} else {
		c.y = randomAxis(rng)
	}

	return &c
}

func randomAxis(rng *rand.Rand) float64 {
	return math.Floor(rng.Float64() * RandomExtent)
}

// X returns the horizontal coordinate.
func (c *City) X() float64 { return c.x }

// Y returns the vertical coordinate.
func (c *City) Y() float64 { return c.y }

// DistanceTo returns the Euclidean distance between c and other.
//
// Complexity: O(1).
func (c *City) DistanceTo(other *City) float64 {
	var (
		dx = c.x - other.x
		dy = c.y - other.y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the city as "x, y".
func (c *City) String() string {
	return strconv.FormatFloat(c.x, 'g', -1, 64) + ", " + strconv.FormatFloat(c.y, 'g', -1, 64)
}
