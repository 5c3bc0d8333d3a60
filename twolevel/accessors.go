package twolevel

// HeadParent returns a parent record usable as the start of a traversal
// over the cyclic parent list. TailParent().Next() == HeadParent().
func (t *Tree) HeadParent() *ParentNode { return &t.parents[0] }

// TailParent returns the parent record whose Next() is HeadParent(). Its
// identity is arbitrary (the parent list is cyclic) but stable unless a
// mutation reorders the parent list (Reverse's multi-segment path,
// DoubleBridgeMove).
func (t *Tree) TailParent() *ParentNode { return t.HeadParent().prev }

// OriginCityNode returns the node bound to this tree's origin city.
func (t *Tree) OriginCityNode() *CityNode { return t.nodeByCity(t.originCity) }

// NodeByCity returns the node bound to city. Precondition: city is within
// [OriginCity(), OriginCity()+CityCount()).
func (t *Tree) NodeByCity(city int) *CityNode { return t.nodeByCity(city) }

// ParentByCity returns the segment record currently owning city's node.
func (t *Tree) ParentByCity(city int) *ParentNode { return t.nodeByCity(city).parent }

// SegmentCount returns P, the fixed number of segments.
func (t *Tree) SegmentCount() int { return len(t.parents) }

// CityCount returns n, the fixed number of cities.
func (t *Tree) CityCount() int { return t.nCities }

// OriginCity returns the first city identifier this tree was constructed
// with; city identifiers run [OriginCity(), OriginCity()+CityCount()).
func (t *Tree) OriginCity() int { return t.originCity }

// SegmentID returns u's owning segment's sequence number within the cyclic
// parent list — a thin wrapper over u.Parent().ID(), exposed per
// SPEC_FULL.md §4.8 to let callers (and tests) check the double-bridge
// precondition that no two of its four arguments share a segment without
// reaching into ParentNode by hand.
func (t *Tree) SegmentID(u *CityNode) int { return u.parent.id }
