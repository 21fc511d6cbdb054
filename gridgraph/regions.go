package gridgraph

// Regions partitions the grid into connected regions under the current
// blocks: two cells share a region exactly when FindPath between them is
// non-empty (or they are the same cell).
// Regions are ordered by their first cell in row-major order, and each
// region lists its cells in BFS discovery order from that first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *GridGraph) Regions() [][]Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := g.Len()
	seen := make([]bool, total)
	var regions [][]Node
	var buf [4]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Node

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, g.node(u))
			for _, v := range g.neighborIndices(u, g.blocked, buf[:0]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether a and b lie in the same region.
func (g *GridGraph) Connected(a, b Node) (bool, error) {
	if err := g.checkNode(a); err != nil {
		return false, err
	}
	if err := g.checkNode(b); err != nil {
		return false, err
	}
	if a == b {
		return true, nil
	}
	path, err := g.FindPath(a, b)
	if err != nil {
		return false, err
	}

	return len(path) > 0, nil
}
