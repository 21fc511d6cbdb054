package gridgraph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentBlockAndSearch mixes registry edits with searches to verify
// no races or panics occur and every returned path is well formed.
func TestConcurrentBlockAndSearch(t *testing.T) {
	g := mustGrid(t, 12, 12)
	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		// Concurrent toggling along row i%11
		go func(id int) {
			defer wg.Done()
			y := id % 11
			_, err := g.ToggleEdge(n(id%12, y), n(id%12, y+1))
			require.NoError(t, err)
		}(i)

		// Concurrent searches
		go func() {
			defer wg.Done()
			path, err := g.FindPath(n(0, 0), n(11, 11))
			require.NoError(t, err)
			if len(path) > 0 {
				require.Equal(t, n(0, 0), path[0])
				require.Equal(t, n(11, 11), path[len(path)-1])
				require.GreaterOrEqual(t, len(path), 23)
			}
		}()
	}
	wg.Wait()

	// the registry is consistent with the last revision
	before := g.Revision()
	_ = g.BlockedEdges()
	require.Equal(t, before, g.Revision())
}
