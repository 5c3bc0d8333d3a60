package twolevel

// DoubleBridgeMove performs the classic 4-opt double bridge: given four
// cities a, b, c, d in strict cyclic forward order (a before b before c
// before d before a again), it removes the four forward edges leaving a,
// b, c, and d, and reconnects as a->Next(c-side), d->Next(b-side),
// c->Next(a-side), b->Next(d-side) — the paths Next(a)..b and Next(c)..d
// trade places around Next(b)..c, and none of them is reversed, which is
// what makes this
// move unreachable by any sequence of 2-opt/3-opt flips and a useful
// diversification step for local search.
//
// Precondition: a, b, c, d lie in pairwise distinct segments and satisfy
// the cyclic order IsBetween(a,b,c), IsBetween(b,c,d), IsBetween(c,d,a),
// IsBetween(d,a,b).
//
// Complexity: O(sqrt n) amortized (four SplitAndMerge calls plus an O(P)
// parent-id renumbering pass).
func (t *Tree) DoubleBridgeMove(a, b, c, d *CityNode) {
	t.assert(t.IsBetween(a, b, c), "DoubleBridgeMove: a, b, c not in cyclic order")
	t.assert(t.IsBetween(b, c, d), "DoubleBridgeMove: b, c, d not in cyclic order")
	t.assert(t.IsBetween(c, d, a), "DoubleBridgeMove: c, d, a not in cyclic order")
	t.assert(t.IsBetween(d, a, b), "DoubleBridgeMove: d, a, b not in cyclic order")
	t.assert(a.parent != b.parent && b.parent != c.parent && c.parent != d.parent &&
		d.parent != a.parent && a.parent != c.parent && b.parent != d.parent,
		"DoubleBridgeMove: a, b, c, d must lie in pairwise distinct segments")

	an := t.Next(a)
	bn := t.Next(b)
	cn := t.Next(c)
	dn := t.Next(d)

	for _, n := range [4]*CityNode{a, b, c, d} {
		if n != n.parent.ForwardEndNode() {
			t.SplitAndMerge(n, false, Forward)
		}
	}

	t.connectArcForward(a, cn)
	t.connectArcForward(d, bn)
	t.connectArcForward(c, an)
	t.connectArcForward(b, dn)

	relinkParents := func(p, q *CityNode) {
		pp, qp := p.parent, q.parent
		pp.next = qp
		qp.prev = pp
	}
	relinkParents(a, cn)
	relinkParents(d, bn)
	relinkParents(c, an)
	relinkParents(b, dn)

	head := t.HeadParent()
	p := head
	id := 0
	for {
		p.id = id
		id++
		p = p.next
		if p == head {
			break
		}
	}
}
