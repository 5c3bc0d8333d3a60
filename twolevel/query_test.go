package twolevel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildLinearTree(t *testing.T, n int) *Tree {
	t.Helper()
	tree, err := NewTree(n, 0)
	require.NoError(t, err)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	tree.SetRawTour(order)
	return tree
}

func TestNextPrev_AreInverse(t *testing.T) {
	tree := buildLinearTree(t, 17)
	for city := 0; city < 17; city++ {
		u := tree.NodeByCity(city)
		require.Equal(t, u, tree.Prev(tree.Next(u)))
		require.Equal(t, u, tree.Next(tree.Prev(u)))
	}
}

func TestHasEdge(t *testing.T) {
	tree := buildLinearTree(t, 10)
	require.True(t, tree.HasEdge(tree.NodeByCity(0), tree.NodeByCity(1)))
	require.True(t, tree.HasEdge(tree.NodeByCity(1), tree.NodeByCity(0)))
	require.True(t, tree.HasEdge(tree.NodeByCity(9), tree.NodeByCity(0)), "tour is cyclic")
	require.False(t, tree.HasEdge(tree.NodeByCity(0), tree.NodeByCity(2)))
}

func TestTurnForward(t *testing.T) {
	tree := buildLinearTree(t, 10)
	a, b := tree.NodeByCity(3), tree.NodeByCity(4)
	gotA, gotB := tree.TurnForward(a, b)
	require.Equal(t, a, gotA)
	require.Equal(t, b, gotB)

	gotA, gotB = tree.TurnForward(b, a)
	require.Equal(t, a, gotA)
	require.Equal(t, b, gotB)
}

func TestIsBetween(t *testing.T) {
	tree := buildLinearTree(t, 20)
	node := tree.NodeByCity
	require.True(t, tree.IsBetween(node(2), node(5), node(10)))
	require.False(t, tree.IsBetween(node(2), node(15), node(10)))
	require.True(t, tree.IsBetween(node(15), node(18), node(3)), "wraps around the cycle")
}

func TestIsBetween_AcrossSegments(t *testing.T) {
	tree := buildLinearTree(t, 30)
	node := tree.NodeByCity
	a, b := node(0), node(29)
	for city := 1; city < 29; city++ {
		require.True(t, tree.IsBetween(a, node(city), b), "city=%d", city)
	}
}

func TestCountSegments_WithinOneSegment(t *testing.T) {
	tree := buildLinearTree(t, 30)
	p0 := tree.HeadParent()
	require.Equal(t, 1, tree.CountSegments(p0.ForwardBeginNode(), p0.ForwardEndNode()))
}

func TestCountSegments_AllSegments(t *testing.T) {
	tree := buildLinearTree(t, 30)
	p := tree.SegmentCount()
	head := tree.HeadParent()
	require.Equal(t, p, tree.CountSegments(head.ForwardEndNode(), head.ForwardBeginNode()))
}
