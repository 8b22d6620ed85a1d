package city

import "gonum.org/v1/gonum/mat"

// Registry is the ordered universe of cities a tour is built from.
//
// Indices are assigned in insertion order and never change. Duplicated
// coordinates are allowed; two cities at the same point are still distinct
// members. Once frozen (the GA engine freezes the registry it is bound to),
// the size is fixed for the rest of the run.
//
// A Registry is not safe for concurrent mutation. Concurrent reads of a
// frozen registry are safe.
type Registry struct {
	cities []*City
	frozen bool
}

// NewRegistry returns a registry holding the given cities in order.
// Nil entries are skipped.
func NewRegistry(cities ...*City) *Registry {
	r := &Registry{cities: make([]*City, 0, len(cities))}
	for _, c := range cities {
		if c != nil {
			r.cities = append(r.cities, c)
		}
	}

	return r
}

// Add appends c. There is no duplicate check.
//
// Errors: ErrNilCity, ErrRegistryFrozen.
func (r *Registry) Add(c *City) error {
	if c == nil {
		return ErrNilCity
	}
	if r.frozen {
		return ErrRegistryFrozen
	}
	r.cities = append(r.cities, c)

	return nil
}

// Get returns the city at index, or ErrIndexOutOfRange.
func (r *Registry) Get(index int) (*City, error) {
	if index < 0 || index >= len(r.cities) {
		return nil, ErrIndexOutOfRange
	}

	return r.cities[index], nil
}

// Size returns the number of cities.
func (r *Registry) Size() int { return len(r.cities) }

// Cities returns a copy of the ordered city slice. The *City values are shared.
func (r *Registry) Cities() []*City {
	out := make([]*City, len(r.cities))
	copy(out, r.cities)

	return out
}

// IndexOf returns the registry index of c by identity, or -1.
//
// Complexity: O(n).
func (r *Registry) IndexOf(c *City) int {
	for i, rc := range r.cities {
		if rc == c {
			return i
		}
	}

	return -1
}

// Freeze fixes the registry size. Further Add calls fail with ErrRegistryFrozen.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool { return r.frozen }

// DistanceMatrix returns the symmetric n×n matrix of pairwise Euclidean
// distances, indexed by registry position.
//
// Complexity: O(n²) time and space.
func (r *Registry) DistanceMatrix() (*mat.SymDense, error) {
	var n = len(r.cities)
	if n == 0 {
		return nil, ErrEmptyRegistry
	}
	m := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.SetSym(i, j, r.cities[i].DistanceTo(r.cities[j]))
		}
	}

	return m, nil
}
