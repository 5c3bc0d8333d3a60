package twolevel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFuzz_RandomReversesPreserveInvariants drives a tree through a long
// sequence of random Reverse calls (the operation most likely to expose a
// split/merge or relinking bug, since it is the only one whose dispatch
// depends on where its two arguments fall relative to segment
// boundaries) and checks CheckInvariants after every step, plus that the
// resulting raw tour is still a permutation of the original city set.
// Seeds are fixed so a failure is reproducible.
func TestFuzz_RandomReversesPreserveInvariants(t *testing.T) {
	const n = 67
	for _, seed := range []uint64{1, 2, 3, 42, 1337} {
		rng := newSplitmix64(seed)
		tree, err := NewTree(n, 0)
		require.NoError(t, err)

		order := rng.perm(n)
		tree.SetRawTour(order)
		require.NoError(t, tree.CheckInvariants())

		for step := 0; step < 200; step++ {
			a := tree.NodeByCity(rng.intn(n))
			b := tree.NodeByCity(rng.intn(n))
			if a == b {
				continue
			}
			tree.Reverse(a, b)
			require.NoError(t, tree.CheckInvariants(), "seed=%d step=%d", seed, step)
		}

		tour := tree.GetRawTour(nil, Forward)
		seen := make([]bool, n)
		for _, city := range tour {
			require.False(t, seen[city], "seed=%d: city %d repeated", seed, city)
			seen[city] = true
		}
	}
}

// TestFuzz_RandomFlipsPreserveInvariants is the same drill for Flip, whose
// precondition (both pairs must be adjacent in the same direction) means
// arguments have to be derived from Next rather than chosen freely.
func TestFuzz_RandomFlipsPreserveInvariants(t *testing.T) {
	const n = 53
	rng := newSplitmix64(7)
	tree, err := NewTree(n, 0)
	require.NoError(t, err)
	tree.SetRawTour(rng.perm(n))

	for step := 0; step < 100; step++ {
		a := tree.NodeByCity(rng.intn(n))
		b := tree.Next(a)
		c := tree.NodeByCity(rng.intn(n))
		d := tree.Next(c)
		if a == c || b == c || d == a {
			continue
		}
		tree.Flip(a, b, c, d)
		require.NoError(t, tree.CheckInvariants(), "step=%d", step)
	}

	tour := tree.GetRawTour(nil, Forward)
	seen := make([]bool, n)
	for _, city := range tour {
		require.False(t, seen[city], "city %d repeated", city)
		seen[city] = true
	}
}
