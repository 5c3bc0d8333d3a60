package twolevel

// Reverse reverses the forward path from a to b (inclusive), leaving the
// rest of the tour untouched. It is a no-op when a == b, and when b
// immediately precedes a (Next(b) == a): the path a..b then covers the
// whole tour, and reversing it yields the same cycle.
//
// Dispatch mirrors the segment structure of the path:
//   - already within one segment: reverseSegment handles it directly.
//   - otherwise, SplitAndMerge pushes a and/or b to a segment boundary
//     (choosing whichever side moves fewer nodes), after which the path
//     either collapses into a single segment or spans whole segments only.
//   - spanning whole segments: the parent list between a's and b's
//     segments is spliced out and re-threaded in reverse order, and each
//     of those segments has its reversal bit flipped. This is the step
//     that makes Reverse O(sqrt n) instead of O(n): segment bodies are
//     never walked, only relinked.
//
// Complexity: O(sqrt n) amortized.
func (t *Tree) Reverse(a, b *CityNode) {
	if a == b || t.Next(b) == a {
		return
	}

	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}

	splitAndMergeA := func() {
		if a == a.parent.ForwardBeginNode() {
			return
		}
		forwardEnd := a.parent.ForwardEndNode()
		forwardHalfLen := abs(forwardEnd.id-a.id) + 1
		if forwardHalfLen <= a.parent.size/2 {
			t.SplitAndMerge(a, true, Forward)
		} else {
			t.SplitAndMerge(a, false, Backward)
		}
	}
	splitAndMergeB := func() {
		if b == b.parent.BackwardBeginNode() {
			return
		}
		if b.parent.next == a.parent {
			t.SplitAndMerge(b, true, Backward)
			return
		}
		backwardEnd := b.parent.BackwardEndNode()
		backwardHalfLen := abs(backwardEnd.id-b.id) + 1
		if backwardHalfLen <= b.parent.size/2 {
			t.SplitAndMerge(b, true, Backward)
		} else {
			t.SplitAndMerge(b, false, Forward)
		}
	}

	splitAndMergeA()
	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}
	splitAndMergeB()
	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}

	t.assert(a == a.parent.ForwardBeginNode(), "Reverse: a is not at a segment boundary")
	t.assert(b == b.parent.ForwardEndNode(), "Reverse: b is not at a segment boundary")

	s1 := a.parent.prev
	s2 := b.parent.next

	stack := t.scratchParents[:0]
	stack = append(stack, s2)
	p := a.parent
	for p != s2 {
		p.reverse = !p.reverse
		stack = append(stack, p)
		p = p.next
	}

	nParents := len(t.parents)
	p = s1
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p.next = q
		q.prev = p
		q.id = (p.id + 1) % nParents
		t.connectArcForward(p.ForwardEndNode(), q.ForwardBeginNode())
		p = q
	}
	t.scratchParents = stack

	t.assert((p.id+1)%nParents == p.next.id, "Reverse: parent relabeling broke id contiguity")
}

// reverseSegment reverses a..b, which share a single parent. It either
// flips the whole segment's reversal bit (cheap) or, for a strict
// sub-range, walks and relinks just the moved nodes — falling back to a
// split-then-complete-reversal when the sub-range exceeds 3/4 of the
// nominal segment length (nominalLen), since at that size peeling the rest
// of the segment off into neighboring segments costs less than relinking
// directly.
func (t *Tree) reverseSegment(a, b *CityNode) {
	parent := a.parent
	if (a == parent.segmentBegin && b == parent.segmentEnd) ||
		(b == parent.segmentBegin && a == parent.segmentEnd) {
		t.reverseCompleteSegment(a, b)
		return
	}

	pathLen := abs(a.id-b.id) + 1
	if pathLen <= t.nominalLen*3/4 {
		t.reversePartialSegment(a, b)
		return
	}

	t.SplitAndMerge(a, false, Backward)
	t.SplitAndMerge(b, false, Forward)
	t.reverseCompleteSegment(a, b)
}

// reverseCompleteSegment reverses an entire segment by flipping its
// reversal bit and re-splicing its two physical ends to its neighbors.
// O(1) regardless of segment size — the defining trick of the structure.
func (t *Tree) reverseCompleteSegment(a, b *CityNode) {
	parent := a.parent
	t.assert(parent == b.parent, "reverseCompleteSegment: a and b must share a parent")

	prevA := a.parent.prev.ForwardEndNode()
	nextB := b.parent.next.ForwardBeginNode()

	parent.reverse = !parent.reverse

	if prevA.parent.reverse {
		prevA.prev = b
	} else {
		prevA.next = b
	}
	if parent.reverse {
		a.prev = nextB
	} else {
		a.next = nextB
	}
	if nextB.parent.reverse {
		nextB.next = a
	} else {
		nextB.prev = a
	}
	if parent.reverse {
		b.next = prevA
	} else {
		b.prev = prevA
	}
}

// reversePartialSegment reverses a strict sub-range a..b within a single
// segment by walking the range once, relinking each node's physical
// pointers in reverse order, then renumbering local IDs. O(k) in the range
// length k, which reverseSegment bounds to at most 3/4 of nominalLen.
func (t *Tree) reversePartialSegment(a, b *CityNode) {
	parent := a.parent
	prevA := t.Prev(a)
	nextB := t.Next(b)
	partialLen := abs(a.id-b.id) + 1

	path := t.scratchNodes[:0]
	path = append(path, nextB, a)
	p := t.Next(a)
	for p != b {
		path = append(path, p)
		p = t.Next(p)
	}
	path = append(path, b)

	p = prevA
	for len(path) > 0 {
		q := path[len(path)-1]
		path = path[:len(path)-1]
		t.connectArcForward(p, q)
		p = q
	}
	t.scratchNodes = path

	switch {
	case a == parent.segmentBegin:
		parent.segmentBegin = b
	case a == parent.segmentEnd:
		parent.segmentEnd = b
	case b == parent.segmentBegin:
		parent.segmentBegin = a
	case b == parent.segmentEnd:
		parent.segmentEnd = a
	}

	if parent.reverse {
		aID := a.prev.id + 1
		if a == parent.segmentBegin {
			aID = b.next.id - partialLen
		}
		t.relabelID(a, b, aID)
	} else {
		bID := b.prev.id + 1
		if b == parent.segmentBegin {
			bID = a.next.id - partialLen
		}
		t.relabelID(b, a, bID)
	}
}
