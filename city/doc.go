// Package city defines the problem universe of a Euclidean TSP instance:
// immutable 2D points (City) and the ordered collection of all points a tour
// is built from (Registry).
//
// What is in here?
//
//   - City: an immutable point with Euclidean DistanceTo.
//   - Registry: the canonical, index-stable list of cities of one run.
//   - TSPLIB loader: NODE_COORD_SECTION instances (EUC_2D, CEIL_2D, ATT).
//   - DistanceMatrix: a gonum *mat.SymDense view for matrix-based solvers.
//
// Ownership:
//
//	Every Registry owns its own slice of *City; nothing is shared between
//	registries. Tours reference the registry's *City values and never copy
//	them, so identity (pointer equality) is the membership test everywhere.
//
// Randomness:
//
//	No function in this package touches a global generator. Random cities
//	are drawn from the *rand.Rand the caller injects.
//
//	reg := city.NewRegistry(city.New(0, 0), city.New(3, 4))
//	c, _ := reg.Get(1)
//	fmt.Println(c.DistanceTo(reg.Cities()[0])) // 5
package city
