package ga

import (
	"math/rand/v2"

	"github.com/katalvlaran/gatsp/city"
)

// crossover draws both cut points independently and uniformly in [0,n).
func (e *Engine) crossover(p1, p2 *Tour, rng *rand.Rand) (*Tour, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTour
	}
	var n = p1.Size()
	if n == 0 {
		return CrossoverAt(p1, p2, 0, 0)
	}
	start := rng.IntN(n)
	end := rng.IntN(n)

	return CrossoverAt(p1, p2, start, end)
}

// CrossoverAt is ordered crossover with explicit cut points.
//
// Segment taken from p1 (positions keep their index in the child):
//   - start < end: positions strictly between start and end;
//   - start > end: every position except those strictly between end and
//     start (the wrap-around segment);
//   - start == end: nothing.
//
// The remaining positions are filled with p2's cities that are not yet in
// the child, in p2's order, each into the first unset position from the
// left. Because the fill cursor only moves right and each city is inserted at
// most once, two permutations of the same registry always yield a
// permutation.
//
// Errors: ErrNilTour, ErrSizeMismatch, ErrIncompleteTour,
// ErrPositionOutOfRange (cut point outside [0,n)), ErrNotPermutation
// (parents are not permutations of the same city set).
//
// Complexity: O(n) time, O(n) space.
func CrossoverAt(p1, p2 *Tour, start, end int) (*Tour, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilTour
	}
	var n = p1.Size()
	if p2.Size() != n {
		return nil, ErrSizeMismatch
	}
	if !p1.Complete() || !p2.Complete() {
		return nil, ErrIncompleteTour
	}
	child := &Tour{reg: p1.reg, slots: make([]*city.City, n)}
	if n == 0 {
		return child, nil
	}
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, ErrPositionOutOfRange
	}

	present := make(map[*city.City]struct{}, n)
	var i int
	for i = 0; i < n; i++ {
		if inSegment(i, start, end) {
			child.slots[i] = p1.slots[i]
			present[p1.slots[i]] = struct{}{}
		}
	}

	var (
		cursor int
		ok     bool
	)
	for _, c := range p2.slots {
		if _, ok = present[c]; ok {
			continue
		}
		for cursor < n && child.slots[cursor] != nil {
			cursor++
		}
		if cursor == n {
			return nil, ErrNotPermutation
		}
		child.slots[cursor] = c
		present[c] = struct{}{}
		cursor++
	}

	if len(present) != n || !child.Complete() {
		return nil, ErrNotPermutation
	}

	return child, nil
}

// inSegment reports whether position i is copied from the first parent.
func inSegment(i, start, end int) bool {
	switch {
	case start < end:
		return i > start && i < end
	case start > end:
		return !(i < start && i > end)
	default:
		return false
	}
}
