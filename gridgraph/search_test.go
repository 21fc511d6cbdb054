package gridgraph_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bfsDistance is an independent reference: plain BFS over Neighbors.
// Returns -1 when end is unreachable.
func bfsDistance(t *testing.T, g *gridgraph.GridGraph, start, end gridgraph.Node) int {
	t.Helper()
	depth := map[gridgraph.Node]int{start: 0}
	queue := []gridgraph.Node{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == end {
			return depth[u]
		}
		nb, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, v := range nb {
			if _, ok := depth[v]; !ok {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return -1
}

// requireValidPath checks endpoints, adjacency and that no step crosses a block.
func requireValidPath(t *testing.T, g *gridgraph.GridGraph, path []gridgraph.Node, start, end gridgraph.Node) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		blocked, err := g.IsBlocked(path[i-1], path[i])
		require.NoError(t, err, "step %s→%s is not a lattice edge", path[i-1], path[i])
		require.False(t, blocked, "step %s→%s crosses a blocked edge", path[i-1], path[i])
	}
}

// randomWalls blocks each lattice edge with probability p.
func randomWalls(t *testing.T, g *gridgraph.GridGraph, r *rand.Rand, p float64) {
	t.Helper()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x+1 < g.Width() && r.Float64() < p {
				require.NoError(t, g.BlockEdge(n(x, y), n(x+1, y)))
			}
			if y+1 < g.Height() && r.Float64() < p {
				require.NoError(t, g.BlockEdge(n(x, y), n(x, y+1)))
			}
		}
	}
}

// TestFindPath_Open3x3 checks the deterministic shortest path on an open grid.
func TestFindPath_Open3x3(t *testing.T) {
	g := mustGrid(t, 3, 3)
	path, err := g.FindPath(n(0, 0), n(2, 2))
	require.NoError(t, err)
	require.Len(t, path, 5)
	assert.Equal(t, []gridgraph.Node{n(0, 0), n(1, 0), n(2, 0), n(2, 1), n(2, 2)}, path)
}

// TestFindPath_SameNode: start == end yields an empty path.
func TestFindPath_SameNode(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, v := range g.Nodes() {
		path, err := g.FindPath(v, v)
		require.NoError(t, err)
		assert.NotNil(t, path)
		assert.Empty(t, path)
	}
}

// TestFindPath_Adjacent returns the two endpoints.
func TestFindPath_Adjacent(t *testing.T) {
	g := mustGrid(t, 2, 1)
	path, err := g.FindPath(n(1, 0), n(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Node{n(1, 0), n(0, 0)}, path)
}

// TestFindPath_EndWalledOff: every edge of end blocked → empty, not an error.
func TestFindPath_EndWalledOff(t *testing.T) {
	g := mustGrid(t, 3, 3)
	for _, v := range []gridgraph.Node{n(0, 1), n(1, 0), n(2, 1), n(1, 2)} {
		require.NoError(t, g.BlockEdge(n(1, 1), v))
	}
	path, err := g.FindPath(n(0, 0), n(1, 1))
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	// and the other way round: a boxed-in start
	path, err = g.FindPath(n(1, 1), n(2, 2))
	require.NoError(t, err)
	assert.Empty(t, path)
}

// TestFindPath_Detour routes around a partial wall.
func TestFindPath_Detour(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.BlockEdge(n(0, 0), n(0, 1)))
	require.NoError(t, g.BlockEdge(n(1, 0), n(1, 1)))

	path, err := g.FindPath(n(0, 0), n(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Node{
		n(0, 0), n(1, 0), n(2, 0), n(2, 1), n(1, 1), n(0, 1), n(0, 2),
	}, path)
}

// TestFindPath_Repeatable: an unchanged graph returns the identical path.
func TestFindPath_Repeatable(t *testing.T) {
	g := mustGrid(t, 8, 6)
	randomWalls(t, g, rand.New(rand.NewSource(7)), 0.25)

	first, err := g.FindPath(n(0, 0), n(7, 5))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := g.FindPath(n(0, 0), n(7, 5))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestFindPath_MatchesBFS compares path lengths with an independent BFS on
// random mazes and validates every returned path.
func TestFindPath_MatchesBFS(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 40; round++ {
		w, h := 2+r.Intn(10), 2+r.Intn(10)
		g := mustGrid(t, w, h)
		randomWalls(t, g, r, 0.35)

		start := n(r.Intn(w), r.Intn(h))
		end := n(r.Intn(w), r.Intn(h))
		if start == end {
			continue
		}
		path, err := g.FindPath(start, end)
		require.NoError(t, err)

		want := bfsDistance(t, g, start, end)
		if want < 0 {
			assert.Empty(t, path, "round %d: %s→%s should be unreachable", round, start, end)
			continue
		}
		requireValidPath(t, g, path, start, end)
		assert.Equal(t, want+1, len(path), "round %d: %s→%s", round, start, end)
	}
}

// TestFindPath_OutOfBounds rejects bad coordinates for both endpoints.
func TestFindPath_OutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	_, err := g.FindPath(n(-1, 0), n(2, 2))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
	_, err = g.FindPath(n(0, 0), n(3, 3))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
	_, err = g.FindPath(n(5, 5), n(5, 5))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
}

// TestFindPath_Cancelled returns the context error.
func TestFindPath_Cancelled(t *testing.T) {
	g := mustGrid(t, 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path, err := g.FindPath(n(0, 0), n(9, 9), gridgraph.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, path)
}

// TestFindPath_CancelMidSearch cancels from the finalize hook.
func TestFindPath_CancelMidSearch(t *testing.T) {
	g := mustGrid(t, 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	seen := 0
	_, err := g.FindPath(n(0, 0), n(9, 9),
		gridgraph.WithContext(ctx),
		gridgraph.WithOnFinalize(func(gridgraph.Node, int) {
			seen++
			if seen == 5 {
				cancel()
			}
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, seen)
}

// TestFindPath_OnFinalizeOrder records finalization on a 3×1 strip.
func TestFindPath_OnFinalizeOrder(t *testing.T) {
	g := mustGrid(t, 3, 1)
	type visit struct {
		at   gridgraph.Node
		dist int
	}
	var got []visit
	_, err := g.FindPath(n(0, 0), n(2, 0), gridgraph.WithOnFinalize(func(v gridgraph.Node, d int) {
		got = append(got, visit{v, d})
	}))
	require.NoError(t, err)
	assert.Equal(t, []visit{{n(0, 0), 0}, {n(1, 0), 1}, {n(2, 0), 2}}, got)
}

// TestFindPath_MaxDistance caps the explored radius.
func TestFindPath_MaxDistance(t *testing.T) {
	g := mustGrid(t, 5, 1)
	path, err := g.FindPath(n(0, 0), n(4, 0), gridgraph.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = g.FindPath(n(0, 0), n(4, 0), gridgraph.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Len(t, path, 5)

	_, err = g.FindPath(n(0, 0), n(4, 0), gridgraph.WithMaxDistance(-1))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
}

// TestFindPath_MaxDistanceHookCount reports only nodes within the cap.
func TestFindPath_MaxDistanceHookCount(t *testing.T) {
	g := mustGrid(t, 3, 3)
	var got []gridgraph.Node
	path, err := g.FindPath(n(0, 0), n(2, 2),
		gridgraph.WithMaxDistance(1),
		gridgraph.WithOnFinalize(func(v gridgraph.Node, _ int) { got = append(got, v) }),
	)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, []gridgraph.Node{n(0, 0), n(1, 0), n(0, 1)}, got)
}

// TestFindPath_OnFinalizeMayEdit lets the hook mutate the graph without
// deadlocking; the running search keeps the board it started with.
func TestFindPath_OnFinalizeMayEdit(t *testing.T) {
	g := mustGrid(t, 3, 1)
	var rev uint64
	done := make(chan []gridgraph.Node, 1)
	go func() {
		path, err := g.FindPath(n(0, 0), n(2, 0),
			gridgraph.WithObservedRevision(&rev),
			gridgraph.WithOnFinalize(func(v gridgraph.Node, _ int) {
				if v == n(0, 0) {
					assert.NoError(t, g.BlockEdge(n(1, 0), n(2, 0)))
					_, err := g.Neighbors(n(1, 0))
					assert.NoError(t, err)
				}
			}),
		)
		assert.NoError(t, err)
		done <- path
	}()

	select {
	case path := <-done:
		assert.Equal(t, []gridgraph.Node{n(0, 0), n(1, 0), n(2, 0)}, path)
	case <-time.After(5 * time.Second):
		t.Fatal("FindPath did not return while its hook edited the graph")
	}
	assert.Equal(t, uint64(0), rev)
	blocked, err := g.IsBlocked(n(1, 0), n(2, 0))
	require.NoError(t, err)
	assert.True(t, blocked)
}

// TestDistance covers reachable, unreachable and degenerate queries.
func TestDistance(t *testing.T) {
	g := mustGrid(t, 3, 3)
	d, err := g.Distance(n(0, 0), n(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = g.Distance(n(1, 1), n(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	require.NoError(t, g.BlockEdge(n(2, 2), n(1, 2)))
	require.NoError(t, g.BlockEdge(n(2, 2), n(2, 1)))
	d, err = g.Distance(n(0, 0), n(2, 2))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Infinity, d)

	_, err = g.Distance(n(3, 3), n(3, 3))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidArgument)
}

// TestFindPath_ObservedRevision reports the revision the search ran against.
func TestFindPath_ObservedRevision(t *testing.T) {
	g := mustGrid(t, 3, 3)
	require.NoError(t, g.BlockEdge(n(0, 0), n(1, 0)))
	require.NoError(t, g.BlockEdge(n(2, 2), n(2, 1)))

	var rev uint64
	_, err := g.FindPath(n(0, 0), n(2, 2), gridgraph.WithObservedRevision(&rev))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rev)

	rev = 0
	_, err = g.FindPath(n(1, 1), n(1, 1), gridgraph.WithObservedRevision(&rev))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rev)
}
