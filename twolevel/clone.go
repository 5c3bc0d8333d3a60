package twolevel

// Clone returns a deep, independent copy of t: same city population,
// same tour order, same segment count, but no shared nodes or parents —
// mutating the clone never affects t and vice versa. The clone's segments
// are partitioned afresh by SetRawTour, so its segment sizes and reversal
// bits need not match t's. Scratch buffers are not copied; they hold no
// logical state (see the scratch fields of Tree). O(n).
func (t *Tree) Clone() *Tree {
	clone, err := NewTree(t.nCities, t.originCity, WithAssertions(t.assertionsEnabled))
	if err != nil {
		// t was itself built successfully with this nCities, so this can only
		// happen if t's invariants were already broken.
		panic(err)
	}
	clone.SetRawTour(t.GetRawTour(t.OriginCityNode(), Forward))
	return clone
}
