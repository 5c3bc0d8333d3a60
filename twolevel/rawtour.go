package twolevel

// GetRawTour walks the tour from start (OriginCityNode if nil) in direction
// and returns the visited cities in order. O(n).
func (t *Tree) GetRawTour(start *CityNode, direction Direction) []int {
	return t.ToRawTour(make([]int, 0, t.nCities), start, direction)
}

// ToRawTour is GetRawTour with a caller-supplied destination slice, reused
// (truncated to length zero, capacity preserved) rather than allocated —
// for callers walking many tours, such as the fuzz-testing invariant
// checker, who would otherwise allocate once per check.
func (t *Tree) ToRawTour(dst []int, start *CityNode, direction Direction) []int {
	if start == nil {
		start = t.OriginCityNode()
	}
	dst = dst[:0]
	u := start
	for i := 0; i < t.nCities; i++ {
		dst = append(dst, u.city)
		if direction == Forward {
			u = t.Next(u)
		} else {
			u = t.Prev(u)
		}
	}
	return dst
}

// ActualSegmentSizes returns the current size of every segment, starting
// from start's segment (HeadParent's if start is nil) and walking the
// cyclic parent list forward once. Useful for observing how SplitAndMerge
// has skewed segment sizes away from the nominal n/P after a run of
// mutations. O(P).
func (t *Tree) ActualSegmentSizes(start *CityNode) []int {
	var head *ParentNode
	if start == nil {
		head = t.HeadParent()
	} else {
		head = start.parent
	}
	sizes := make([]int, 0, len(t.parents))
	p := head
	for {
		sizes = append(sizes, p.size)
		p = p.next
		if p == head {
			break
		}
	}
	return sizes
}
