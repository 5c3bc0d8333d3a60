package twolevel

// SplitAndMerge peels cities off s's segment and splices them into the
// neighboring segment named by direction, shrinking one segment and
// growing the other. It is the only primitive that changes which parent a
// CityNode belongs to; Reverse and DoubleBridgeMove call it to push a split
// point to a segment boundary before reconnecting segments wholesale.
//
// If includeSelf is true, s itself moves along with every node strictly
// beyond it (in direction) that shares its segment; otherwise s stays put
// and only the nodes strictly beyond it move. A no-op (s already sits at
// the segment boundary on the relevant side) does nothing.
//
// Precondition: s's segment has a distinct neighbor in direction (always
// true once P >= 2, which NewTree guarantees).
//
// Complexity: O(k) where k is the number of nodes moved, bounded by the
// current size of s's segment (which can exceed nominalLen).
func (t *Tree) SplitAndMerge(s *CityNode, includeSelf bool, direction Direction) {
	parent := s.parent
	var neighbor *ParentNode
	if direction == Forward {
		neighbor = parent.next
	} else {
		neighbor = parent.prev
	}

	moved := t.scratchNodes[:0]
	if includeSelf {
		moved = append(moved, s)
	}

	var boundary *CityNode
	if direction == Forward {
		p := t.Next(s)
		for p.parent == parent {
			moved = append(moved, p)
			p = t.Next(p)
		}
		if includeSelf {
			boundary = t.Prev(s)
		} else {
			boundary = s
		}
	} else {
		p := t.Prev(s)
		for p.parent == parent {
			moved = append(moved, p)
			p = t.Prev(p)
		}
		if includeSelf {
			boundary = t.Next(s)
		} else {
			boundary = s
		}
	}

	if len(moved) == 0 {
		t.scratchNodes = moved
		return
	}

	neighbor.size += len(moved)
	parent.size -= len(moved)
	t.assert(parent.size > 0, "SplitAndMerge: segment %d would become empty", parent.id)

	if direction == Forward {
		var q *CityNode
		deltaID := -1
		if neighbor.reverse {
			q = neighbor.segmentEnd
			deltaID = 1
		} else {
			q = neighbor.segmentBegin
		}
		for len(moved) > 0 {
			p := moved[len(moved)-1]
			moved = moved[:len(moved)-1]
			p.parent = neighbor
			t.connectArcForward(p, q)
			p.id = q.id + deltaID
			q = p
		}
		if neighbor.reverse {
			neighbor.segmentEnd = q
		} else {
			neighbor.segmentBegin = q
		}
		t.connectArcForward(boundary, q)
		if parent.reverse {
			parent.segmentBegin = boundary
		} else {
			parent.segmentEnd = boundary
		}
	} else {
		var q *CityNode
		deltaID := 1
		if neighbor.reverse {
			q = neighbor.segmentBegin
			deltaID = -1
		} else {
			q = neighbor.segmentEnd
		}
		for len(moved) > 0 {
			p := moved[len(moved)-1]
			moved = moved[:len(moved)-1]
			p.parent = neighbor
			t.connectArcForward(q, p)
			p.id = q.id + deltaID
			q = p
		}
		if neighbor.reverse {
			neighbor.segmentBegin = q
		} else {
			neighbor.segmentEnd = q
		}
		t.connectArcForward(q, boundary)
		if parent.reverse {
			parent.segmentEnd = boundary
		} else {
			parent.segmentBegin = boundary
		}
	}

	t.scratchNodes = moved
}
