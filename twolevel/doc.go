// Package twolevel — two-level tree tour representation.
//
// Tree encodes a cyclic Hamiltonian tour over a fixed population of n
// cities as two interacting cyclic doubly-linked lists:
//
//   - the segment level (parent list): one ParentNode per segment, each
//     carrying a reversal bit and pointers to its segment's two physical
//     endpoints;
//   - the city level (node list): one CityNode per city, each carrying a
//     back-pointer to its owning parent and a local sequence ID.
//
// The tour is partitioned into roughly √n segments of roughly √n cities
// each. Reading a segment "forwards" follows a node's next pointer unless
// its parent's reversal bit is set, in which case it follows prev instead;
// the same flip applies at segment boundaries. This indirection is what
// makes a full segment reversal O(1) (toggle one bit) and a partial
// reversal O(√n) (touch one segment).
//
// Contracts:
//   - Dimensions are fixed at construction (NewTree); no node or parent is
//     ever created or freed afterward.
//   - Tree is single-threaded: no internal locking, no concurrent mutation
//     support. A caller driving multiple trees concurrently must give each
//     tree to a disjoint owner.
//   - Precondition violations (bad city id, malformed permutation,
//     non-adjacent flip endpoints, non-distinct double-bridge segments,
//     emptying a segment via SplitAndMerge) are programmer errors: they
//     panic via assert, not an error return. The one exception is
//     construction-time sizing (n < 2), which returns ErrTooFewCities,
//     since a driver is expected to guard NewTree in normal control flow.
//
// Complexity: O(1) for Next/Prev/IsBetween/HasEdge/CountSegments; O(√n)
// amortized for Reverse/SplitAndMerge/Flip/DoubleBridgeMove.
//
// References:
//   - Fredman, Johnson, McGeoch, Ostheimer. "Data structures for traveling
//     salesmen." Journal of Algorithms 18.3 (1995): 432-479.
//   - Helsgaun. "An effective implementation of the Lin-Kernighan traveling
//     salesman heuristic." EJOR 126.1 (2000): 106-130.
//   - Osterman, Rego. "A k-level data structure for large-scale traveling
//     salesman problems." Annals of Operations Research 244.2 (2016): 583-601.
package twolevel
