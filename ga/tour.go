// Package ga - Tour: one candidate solution.
//
// A Tour is a fixed-size sequence of slots, one per registry city. A slot is
// either unset (nil) or references a registry *city.City; cities are never
// copied. A finished tour is a permutation of the registry.
//
// Length and fitness are cached together under a tri-state flag:
//
//	cacheUnset: never computed since construction;
//	cacheValid: length/fitness reflect the current slots;
//	cacheStale: a slot write happened after the last computation.
//
// Only cacheValid short-circuits; the other two recompute on the next read.
// This keeps a genuinely zero-length tour distinct from "not computed".
package ga

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/tsp"
)

type cacheState uint8

const (
	cacheUnset cacheState = iota
	cacheValid
	cacheStale
)

// Tour is an ordering of the cities of a registry.
type Tour struct {
	reg     *city.Registry
	slots   []*city.City
	length  float64
	fitness float64
	cache   cacheState
}

// NewTour returns a tour over reg with every slot unset.
func NewTour(reg *city.Registry) *Tour {
	return &Tour{reg: reg, slots: make([]*city.City, reg.Size())}
}

// RandomTour places every registry city exactly once and then shuffles the
// order uniformly (Fisher–Yates) with rng.
//
// Complexity: O(n).
func RandomTour(reg *city.Registry, rng *rand.Rand) *Tour {
	t := &Tour{reg: reg, slots: reg.Cities()}

	var i, j int
	for i = len(t.slots) - 1; i > 0; i-- {
		j = rng.IntN(i + 1)
		t.slots[i], t.slots[j] = t.slots[j], t.slots[i]
	}

	return t
}

// Registry returns the registry the tour was built over.
func (t *Tour) Registry() *city.Registry { return t.reg }

// Size returns the number of slots (the registry size at construction).
func (t *Tour) Size() int { return len(t.slots) }

// Get returns the city at pos (nil when the slot is unset).
//
// Errors: ErrPositionOutOfRange.
func (t *Tour) Get(pos int) (*city.City, error) {
	if pos < 0 || pos >= len(t.slots) {
		return nil, ErrPositionOutOfRange
	}

	return t.slots[pos], nil
}

// Set writes c at pos and invalidates the cached length and fitness.
//
// Errors: ErrPositionOutOfRange.
func (t *Tour) Set(pos int, c *city.City) error {
	if pos < 0 || pos >= len(t.slots) {
		return ErrPositionOutOfRange
	}
	t.slots[pos] = c
	t.invalidate()

	return nil
}

// Swap exchanges the cities at i and j. Swapping a position with itself
// leaves the cache untouched.
//
// Errors: ErrPositionOutOfRange.
func (t *Tour) Swap(i, j int) error {
	if i < 0 || i >= len(t.slots) || j < 0 || j >= len(t.slots) {
		return ErrPositionOutOfRange
	}
	t.swap(i, j)

	return nil
}

func (t *Tour) swap(i, j int) {
	if i == j {
		return
	}
	t.slots[i], t.slots[j] = t.slots[j], t.slots[i]
	t.invalidate()
}

func (t *Tour) invalidate() {
	if t.cache == cacheValid {
		t.cache = cacheStale
	}
}

// Length returns the closed-loop length: the distance between consecutive
// cities in tour order plus the closing edge from the last city back to the
// first. Unset slots are skipped. Tours with fewer than two set cities have
// length 0.
//
// The value is computed at most once per modification; repeated calls
// without an intervening Set/Swap return the identical cached value.
//
// Complexity: O(n) on recomputation, O(1) otherwise.
func (t *Tour) Length() float64 {
	t.refresh()

	return t.length
}

// Fitness returns 1/Length, or +Inf for a zero-length tour. Higher is better.
//
// Complexity: same as Length.
func (t *Tour) Fitness() float64 {
	t.refresh()

	return t.fitness
}

func (t *Tour) refresh() {
	if t.cache == cacheValid {
		return
	}

	var (
		sum   float64
		first *city.City
		prev  *city.City
	)
	for _, c := range t.slots {
		if c == nil {
			continue
		}
		if prev == nil {
			first = c
		} else {
			sum += prev.DistanceTo(c)
		}
		prev = c
	}
	if prev != nil && prev != first {
		sum += prev.DistanceTo(first)
	}

	t.length = sum
	if sum == 0 {
		t.fitness = math.Inf(1)
	} else {
		t.fitness = 1 / sum
	}
	t.cache = cacheValid
}

// Contains reports whether c occupies a slot (identity comparison).
//
// Complexity: O(n).
func (t *Tour) Contains(c *city.City) bool {
	for _, s := range t.slots {
		if s == c {
			return true
		}
	}

	return false
}

// Complete reports whether every slot is set.
func (t *Tour) Complete() bool {
	for _, s := range t.slots {
		if s == nil {
			return false
		}
	}

	return true
}

// Cities returns a copy of the slots in tour order.
func (t *Tour) Cities() []*city.City {
	out := make([]*city.City, len(t.slots))
	copy(out, t.slots)

	return out
}

// Indices maps the tour to registry indices.
//
// Errors: ErrIncompleteTour, ErrNotPermutation (a city outside the registry).
//
// Complexity: O(n) time and space.
func (t *Tour) Indices() ([]int, error) {
	index := make(map[*city.City]int, t.reg.Size())
	for i, c := range t.reg.Cities() {
		index[c] = i
	}

	out := make([]int, len(t.slots))
	for pos, c := range t.slots {
		if c == nil {
			return nil, ErrIncompleteTour
		}
		i, ok := index[c]
		if !ok {
			return nil, ErrNotPermutation
		}
		out[pos] = i
	}

	return out, nil
}

// Validate checks that the tour is a permutation of its registry.
//
// Errors: ErrIncompleteTour, ErrNotPermutation.
func (t *Tour) Validate() error {
	perm, err := t.Indices()
	if err != nil {
		return err
	}
	if len(perm) != t.reg.Size() {
		return ErrNotPermutation
	}
	if len(perm) == 0 {
		return nil
	}
	if err = tsp.ValidatePermutation(perm, t.reg.Size()); err != nil {
		return fmt.Errorf("%w: %v", ErrNotPermutation, err)
	}

	return nil
}

// Clone returns an independent copy sharing the same *city.City values and cache.
func (t *Tour) Clone() *Tour {
	cp := *t
	cp.slots = t.Cities()

	return &cp
}

// String renders the tour as "|x, y|x, y|...|"; unset slots print as "-".
func (t *Tour) String() string {
	var sb strings.Builder
	sb.WriteByte('|')
	for _, c := range t.slots {
		if c == nil {
			sb.WriteByte('-')
		} else {
			sb.WriteString(c.String())
		}
		sb.WriteByte('|')
	}

	return sb.String()
}
