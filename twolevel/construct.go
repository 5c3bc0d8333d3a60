package twolevel

import "math"

// NewTree builds a two-level tree for nCities cities, numbered consecutively
// from originCity. The segment count P is fixed at floor(sqrt(nCities))+1,
// per invariant 6 of the data model. Options configure assertion checking
// and scratch-buffer pre-sizing (see WithAssertions, WithScratchCapacity).
//
// The returned tree has no tour yet; call SetRawTour before using any query
// or mutator.
//
// Errors: ErrTooFewCities when nCities < 2, the one case where the √n
// segmentation cannot form at least two non-empty segments (the
// single-segment tour is an explicit Non-goal of this data structure).
//
// Complexity: O(n + P) for the two arena allocations.
func NewTree(nCities, originCity int, opts ...Option) (*Tree, error) {
	if nCities < 2 {
		return nil, ErrTooFewCities
	}

	p := int(math.Sqrt(float64(nCities))) + 1

	t := &Tree{
		nCities:           nCities,
		originCity:        originCity,
		assertionsEnabled: true,
		nodes:             make([]CityNode, nCities),
		parents:           make([]ParentNode, p),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.assert(originCity >= 0, "originCity must be >= 0, got %d", originCity)
	t.nominalLen = nCities / p

	return t, nil
}

// nodeByCity returns the arena slot for city, indexed directly by
// city-originCity (no wasted prefix — see SPEC_FULL.md §3 on the resolved
// "wasted origin_city slots" open question).
func (t *Tree) nodeByCity(city int) *CityNode {
	t.assert(t.isCityValid(city), "city %d out of range [%d, %d)", city, t.originCity, t.originCity+t.nCities)
	return &t.nodes[city-t.originCity]
}

func (t *Tree) isCityValid(city int) bool {
	return city >= t.originCity && city < t.originCity+t.nCities
}

// SetRawTour initializes the linked structure from a permutation of
// [originCity, originCity+nCities). The permutation is partitioned into P
// contiguous chunks of nominalLen cities; the last chunk absorbs any
// remainder. Existing tree state (if any) is entirely overwritten.
//
// Precondition: order is a permutation of this tree's city population.
// Violating it is a programmer error (assert, not a returned error) per
// the package's error-handling design.
//
// Complexity: O(n).
func (t *Tree) SetRawTour(order []int) {
	t.assert(len(order) == t.nCities, "SetRawTour: order has %d entries, want %d", len(order), t.nCities)
	t.assertPermutation(order)

	p := len(t.parents)
	segLen := t.nominalLen
	firstCity := order[0]
	lastCity := order[len(order)-1]

	for seg := 0; seg < p; seg++ {
		parent := &t.parents[seg]
		parent.id = seg
		if seg > 0 {
			parent.prev = &t.parents[seg-1]
		} else {
			parent.prev = &t.parents[p-1]
		}
		if seg+1 < p {
			parent.next = &t.parents[seg+1]
		} else {
			parent.next = &t.parents[0]
		}
		parent.reverse = false

		iBegin := seg * segLen
		iEnd := iBegin + segLen
		if seg == p-1 {
			iEnd = t.nCities
		}
		parent.segmentBegin = t.nodeByCity(order[iBegin])
		parent.segmentEnd = t.nodeByCity(order[iEnd-1])
		parent.size = iEnd - iBegin

		for i := iBegin; i < iEnd; i++ {
			city := order[i]
			node := t.nodeByCity(city)
			node.city = city
			node.parent = parent
			if i == 0 {
				node.prev = t.nodeByCity(lastCity)
			} else {
				node.prev = t.nodeByCity(order[i-1])
			}
			if i+1 == t.nCities {
				node.next = t.nodeByCity(firstCity)
			} else {
				node.next = t.nodeByCity(order[i+1])
			}
			node.id = i - iBegin
		}
	}
}

// assertPermutation verifies that order is a permutation of
// [originCity, originCity+nCities). O(n) time, O(n) space for the marker
// slice — acceptable since it only runs once per SetRawTour call, never on
// a mutation hot path.
func (t *Tree) assertPermutation(order []int) {
	if !t.assertionsEnabled {
		return
	}
	seen := make([]bool, t.nCities)
	for _, city := range order {
		t.assert(t.isCityValid(city), "SetRawTour: city %d out of range", city)
		idx := city - t.originCity
		t.assert(!seen[idx], "SetRawTour: city %d appears more than once", city)
		seen[idx] = true
	}
}
