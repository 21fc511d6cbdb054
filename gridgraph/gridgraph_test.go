package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// n is shorthand for a Node literal.
func n(x, y int) gridgraph.Node { return gridgraph.Node{X: x, Y: y} }

// mustGrid builds a w×h GridGraph or fails the test.
func mustGrid(t testing.TB, w, h int) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.New(w, h)
	require.NoError(t, err)

	return g
}

//----------------------------------------------------------------------------//
// New and InBounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.New(tc.w, tc.h)
			assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
			assert.Nil(t, g)
		})
	}
}

// TestNew_Dimensions checks the accessors and node enumeration.
func TestNew_Dimensions(t *testing.T) {
	g := mustGrid(t, 4, 2)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 8, g.Len())

	nodes := g.Nodes()
	require.Len(t, nodes, 8)
	assert.Equal(t, n(0, 0), nodes[0])
	assert.Equal(t, n(3, 0), nodes[3])
	assert.Equal(t, n(0, 1), nodes[4])
	assert.Equal(t, n(3, 1), nodes[7])
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := mustGrid(t, 3, 2)
	for _, v := range []gridgraph.Node{n(0, 0), n(2, 1), n(1, 1)} {
		assert.True(t, g.InBounds(v), "InBounds(%s)", v)
	}
	for _, v := range []gridgraph.Node{n(-1, 0), n(3, 0), n(1, 2), n(2, -1)} {
		assert.False(t, g.InBounds(v), "InBounds(%s)", v)
	}
}

// TestNode_String verifies the canonical "(x,y)" form.
func TestNode_String(t *testing.T) {
	assert.Equal(t, "(0,0)", n(0, 0).String())
	assert.Equal(t, "(12,3)", n(12, 3).String())
}

// TestFrontier_Initializer checks that a fresh frontier holds every node.
func TestFrontier_Initializer(t *testing.T) {
	for _, dim := range [][2]int{{1, 1}, {3, 3}, {7, 4}, {15, 15}} {
		g := mustGrid(t, dim[0], dim[1])
		assert.Equal(t, dim[0]*dim[1], gridgraph.FrontierLen(g), "%dx%d", dim[0], dim[1])
	}
}

// TestFrontier_PopOrder verifies selection by distance, lowest index on ties,
// and that stale entries are skipped.
func TestFrontier_PopOrder(t *testing.T) {
	order := gridgraph.PopOrder(6, [][2]int{
		{4, 2}, {1, 2}, {3, 1}, {5, 0}, {3, 5}, // 3 pushed twice; the later entry is stale
	})
	assert.Equal(t, []int{5, 3, 1, 4}, order)
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Interior checks the four neighbors of the 3×3 center.
func TestNeighbors_Interior(t *testing.T) {
	g := mustGrid(t, 3, 3)
	nb, err := g.Neighbors(n(1, 1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []gridgraph.Node{n(0, 1), n(1, 0), n(1, 2), n(2, 1)}, nb)
	// fixed order: left, up, right, down
	assert.Equal(t, []gridgraph.Node{n(0, 1), n(1, 0), n(2, 1), n(1, 2)}, nb)
}

// TestNeighbors_Borders checks corner and edge cells on a 3×3 grid.
func TestNeighbors_Borders(t *testing.T) {
	g := mustGrid(t, 3, 3)
	cases := []struct {
		name string
		at   gridgraph.Node
		want []gridgraph.Node
	}{
		{"Corner", n(0, 0), []gridgraph.Node{n(1, 0), n(0, 1)}},
		{"Left", n(0, 1), []gridgraph.Node{n(1, 1), n(0, 0), n(0, 2)}},
		{"Right", n(2, 1), []gridgraph.Node{n(1, 1), n(2, 0), n(2, 2)}},
		{"Top", n(1, 0), []gridgraph.Node{n(1, 1), n(0, 0), n(2, 0)}},
		{"Bottom", n(1, 2), []gridgraph.Node{n(1, 1), n(0, 2), n(2, 2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nb, err := g.Neighbors(tc.at)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, nb)
		})
	}
}

// TestNeighbors_SingleCell: a 1×1 grid has no neighbors and that is not an error.
func TestNeighbors_SingleCell(t *testing.T) {
	g := mustGrid(t, 1, 1)
	nb, err := g.Neighbors(n(0, 0))
	require.NoError(t, err)
	assert.NotNil(t, nb)
	assert.Empty(t, nb)
}

// TestNeighbors_BoxedIn: a cell with all edges blocked yields an empty set.
func TestNeighbors_BoxedIn(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, v := range []gridgraph.Node{n(0, 1), n(1, 0), n(2, 1), n(1, 2)} {
		require.NoError(t, g.BlockEdge(n(1, 1), v))
	}
	nb, err := g.Neighbors(n(1, 1))
	require.NoError(t, err)
	assert.NotNil(t, nb)
	assert.Empty(t, nb)
}

// TestNeighbors_OutOfBounds rejects coordinates outside the grid.
func TestNeighbors_OutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, v := range []gridgraph.Node{n(-1, 0), n(3, 0), n(0, 3), n(0, -1)} {
		_, err := g.Neighbors(v)
		assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument, "Neighbors(%s)", v)
	}
}
