package gridgraph

// Test bridge: exposes frontier internals to gridgraph_test only.

// FrontierLen returns the size of a freshly initialized frontier for g.
func FrontierLen(g *GridGraph) int {
	return newFrontier(g.Len()).Len()
}

// PopOrder pushes (index, dist) pairs into a fresh frontier sized n and
// returns the indices in the order popMin yields them.
func PopOrder(n int, items [][2]int) []int {
	f := newFrontier(n)
	for _, it := range items {
		f.offer(it[0], it[1])
	}
	var out []int
	for {
		idx, _, ok := f.popMin(Infinity)
		if !ok {
			return out
		}
		out = append(out, idx)
	}
}
