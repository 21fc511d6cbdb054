package gridgraph

import "container/heap"

// frontier is the set of nodes not yet finalized by a search.
// It starts with every node of the grid and shrinks by exactly one per pop.
//
// Selection goes through a min-heap of (dist, index) entries using the
// lazy decrease-key pattern: a relaxed node is pushed again and its stale
// entries are skipped once the node has left the frontier. Nodes that were
// never reached have no heap entry; when the heap runs dry every remaining
// member is at Infinity and no further pop can change the outcome.
type frontier struct {
	pending []bool // pending[i] is true while node i is in the frontier
	size    int
	pq      nodePQ
}

// newFrontier returns a frontier holding all n nodes.
func newFrontier(n int) *frontier {
	pending := make([]bool, n)
	for i := range pending {
		pending[i] = true
	}

	return &frontier{
		pending: pending,
		size:    n,
		pq:      make(nodePQ, 0, n),
	}
}

// Len returns the number of nodes not yet finalized.
func (f *frontier) Len() int { return f.size }

// contains reports whether node i is still in the frontier.
func (f *frontier) contains(i int) bool { return f.pending[i] }

// offer records that node i is now reachable at distance d.
func (f *frontier) offer(i, d int) {
	heap.Push(&f.pq, nodeItem{idx: i, dist: d})
}

// popMin removes and returns the reachable frontier node with the least
// distance, lowest index first on ties. ok is false when no member has a
// distance of at most limit; such members stay in the frontier.
func (f *frontier) popMin(limit int) (idx, dist int, ok bool) {
	for f.pq.Len() > 0 {
		it := f.pq[0]
		if !f.pending[it.idx] {
			heap.Pop(&f.pq) // stale entry
			continue
		}
		if it.dist > limit {
			break
		}
		heap.Pop(&f.pq)
		f.pending[it.idx] = false
		f.size--

		return it.idx, it.dist, true
	}

	return -1, Infinity, false
}

// nodeItem is a heap entry: an arena index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, then idx.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
