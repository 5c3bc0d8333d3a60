package twolevel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTree_TooFewCities(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := NewTree(n, 0)
		require.ErrorIs(t, err, ErrTooFewCities, "n=%d", n)
	}
}

func TestNewTree_SegmentCount(t *testing.T) {
	cases := []struct {
		nCities, wantP int
	}{
		{2, 2},
		{4, 3},
		{9, 4},
		{10, 4},
		{100, 11},
	}
	for _, c := range cases {
		tree, err := NewTree(c.nCities, 0)
		require.NoError(t, err)
		require.Equal(t, c.wantP, tree.SegmentCount(), "nCities=%d", c.nCities)
		require.Equal(t, c.nCities, tree.CityCount())
	}
}

func TestSetRawTour_RoundTrip(t *testing.T) {
	const n = 23
	tree, err := NewTree(n, 100)
	require.NoError(t, err)

	order := make([]int, n)
	for i := range order {
		order[i] = 100 + i
	}
	tree.SetRawTour(order)

	require.NoError(t, tree.CheckInvariants())
	require.Equal(t, order, tree.GetRawTour(nil, Forward))

	// Walking backward from the origin city visits it first, then the rest
	// of the permutation from its far end.
	reversed := make([]int, n)
	for i, c := range order {
		reversed[(n-i)%n] = c
	}
	require.Equal(t, reversed, tree.GetRawTour(tree.OriginCityNode(), Backward))
}

func TestSetRawTour_RejectsWrongLength(t *testing.T) {
	tree, err := NewTree(5, 0)
	require.NoError(t, err)
	require.Panics(t, func() { tree.SetRawTour([]int{0, 1, 2}) })
}

func TestSetRawTour_RejectsDuplicate(t *testing.T) {
	tree, err := NewTree(4, 0)
	require.NoError(t, err)
	require.Panics(t, func() { tree.SetRawTour([]int{0, 1, 1, 3}) })
}

func TestSetRawTour_RejectsOutOfRange(t *testing.T) {
	tree, err := NewTree(4, 0)
	require.NoError(t, err)
	require.Panics(t, func() { tree.SetRawTour([]int{0, 1, 2, 99}) })
}

func TestWithAssertions_Disabled(t *testing.T) {
	tree, err := NewTree(4, 0, WithAssertions(false))
	require.NoError(t, err)
	require.NotPanics(t, func() { tree.SetRawTour([]int{0, 1, 1, 3}) })
}

func TestWithScratchCapacity(t *testing.T) {
	tree, err := NewTree(16, 0, WithScratchCapacity(8))
	require.NoError(t, err)
	require.Equal(t, 0, len(tree.scratchNodes))
	require.Equal(t, 8, cap(tree.scratchNodes))
	require.Equal(t, 0, len(tree.scratchParents))
	require.Equal(t, 8, cap(tree.scratchParents))
}
