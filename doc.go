// Package tourtree is an in-memory tour representation for
// Lin-Kernighan-style Traveling Salesman Problem heuristics.
//
// 🚀 What is tourtree?
//
//	A zero-dependency (beyond testing) library implementing the two-level
//	tree ("two-level list") data structure of Fredman, Johnson, McGeoch &
//	Ostheimer, as refined by Helsgaun's LKH and by Osterman & Rego's
//	k-level generalization:
//	  • Segment-level and city-level cyclic doubly-linked lists
//	  • O(1) next/prev/has_edge, O(1) is_between and count_segments
//	  • O(√n) amortized segment reversal via implicit split-and-merge rebalancing
//	  • 2-opt flip and non-sequential 4-opt double-bridge built on top of reversal
//
// ✨ Why choose tourtree?
//
//   - Sub-linear mutation — no O(n) array reversal, no O(n) linked-list walk.
//   - Minimal surface — construct, set a tour, query and mutate; the search
//     driver (which moves to try, when to stop) lives outside this module.
//   - Deterministic — single-threaded, no hidden state beyond the tour itself.
//
// See package twolevel for the implementation, and cmd/tourtree for a small
// command-line harness that drives it.
package tourtree
