package gridgraph

import (
	"log/slog"
)

// FindPath returns one shortest path from start to end, both inclusive,
// measured in edges. The result is empty (non-nil, nil error) when end is
// unreachable and also, by convention, when start == end.
//
// Preconditions (validated, ErrInvalidArgument on failure):
//  1. start and end lie inside the grid.
//  2. Every SearchOption is valid.
//
// Behavior:
//  1. Frontier = all nodes; dist[start] = 0, everything else Infinity.
//  2. Repeatedly finalize the frontier node with the least distance
//     (lowest row-major index on ties).
//  3. Reaching end: backtrack parents and reverse.
//  4. Otherwise relax every open neighbor still in the frontier by +1.
//
// The registry read lock is held for the whole search, so BlockEdge and
// UnblockEdge callers wait until it returns. With WithOnFinalize the search
// runs on a copy of the registry and holds no lock.
//
// With WithContext the loop polls ctx.Err() once per iteration and returns
// that error on cancellation.
//
// Complexity: O((V+E) log V) time, O(V) memory.
func (g *GridGraph) FindPath(start, end Node, opts ...SearchOption) ([]Node, error) {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.checkNode(start); err != nil {
		return nil, err
	}
	if err := g.checkNode(end); err != nil {
		return nil, err
	}
	if start == end {
		if cfg.Revision != nil {
			*cfg.Revision = g.Revision()
		}
		return []Node{}, nil
	}

	var blocked map[edgeID]bool
	if cfg.OnFinalize != nil {
		// the hook may call back into g, so search a copy without the lock
		var rev uint64
		blocked, rev = g.snapshot()
		if cfg.Revision != nil {
			*cfg.Revision = rev
		}
	} else {
		g.mu.RLock()
		defer g.mu.RUnlock()
		blocked = g.blocked
		if cfg.Revision != nil {
			*cfg.Revision = g.revision
		}
	}

	r := newRunner(g, blocked, start, end, cfg)
	for {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if _, st := r.step(); st != stepExpanded {
			break
		}
	}
	path := r.path()
	g.logger.Debug("gridgraph: path search",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("length", len(path)),
		slog.Int("finalized", r.finalized),
	)

	return path, nil
}

// Distance returns the number of edges on a shortest path from start to
// end, or Infinity when end is unreachable. Distance(n, n) is 0.
func (g *GridGraph) Distance(start, end Node, opts ...SearchOption) (int, error) {
	if start == end {
		if err := g.checkNode(start); err != nil {
			return 0, err
		}
		return 0, nil
	}
	path, err := g.FindPath(start, end, opts...)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return Infinity, nil
	}

	return len(path) - 1, nil
}

// stepState reports what a single runner iteration did.
type stepState int

const (
	// stepExpanded: a node was finalized and its neighbors relaxed.
	stepExpanded stepState = iota
	// stepReached: end was finalized.
	stepReached
	// stepExhausted: no reachable frontier node is left within MaxDistance.
	stepExhausted
)

// runner holds the ephemeral state of one search: distance and parent
// tables plus the frontier. It is discarded once the search returns.
type runner struct {
	g         *GridGraph
	blocked   map[edgeID]bool // registry view: live under lock, or a snapshot
	opts      SearchOptions
	start     int
	end       int
	dist      []int // arena index → best known distance
	parent    []int // arena index → predecessor, -1 if none
	front     *frontier
	finalized int
	state     stepState
	buf       [4]int
}

func newRunner(g *GridGraph, blocked map[edgeID]bool, start, end Node, opts SearchOptions) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		blocked: blocked,
		opts:    opts,
		start:   g.index(start),
		end:     g.index(end),
		dist:    make([]int, n),
		parent:  make([]int, n),
		front:   newFrontier(n),
		state:   stepExpanded,
	}
	for i := 0; i < n; i++ {
		r.dist[i] = Infinity
		r.parent[i] = -1
	}
	r.dist[r.start] = 0
	r.front.offer(r.start, 0)

	return r
}

// step finalizes one node. Once it returns stepReached or stepExhausted,
// every later call returns the same state without touching the tables.
func (r *runner) step() (int, stepState) {
	if r.state != stepExpanded {
		return -1, r.state
	}
	u, d, ok := r.front.popMin(r.opts.MaxDistance)
	if !ok {
		r.state = stepExhausted
		return -1, r.state
	}
	r.finalized++
	if r.opts.OnFinalize != nil {
		r.opts.OnFinalize(r.g.node(u), d)
	}
	if u == r.end {
		r.state = stepReached
		return u, r.state
	}
	r.relax(u)

	return u, stepExpanded
}

// relax offers dist[u]+1 to every open neighbor of u still in the frontier.
// Unit weights guarantee finalized nodes never need revisiting.
func (r *runner) relax(u int) {
	cand := r.dist[u] + 1
	for _, v := range r.g.neighborIndices(u, r.blocked, r.buf[:0]) {
		if !r.front.contains(v) {
			continue
		}
		if cand < r.dist[v] {
			r.dist[v] = cand
			r.parent[v] = u
			r.front.offer(v, cand)
		}
	}
}

// path backtracks from end to start. It is empty unless end was reached
// through at least one recorded parent.
func (r *runner) path() []Node {
	if r.state != stepReached || r.parent[r.end] < 0 {
		return []Node{}
	}
	var rev []Node
	for at := r.end; at >= 0; at = r.parent[at] {
		rev = append(rev, r.g.node(at))
	}
	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
