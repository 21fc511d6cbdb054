package gridgraph

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
)

// edgeID identifies an undirected lattice edge by the arena indices of its
// endpoints, lo being the endpoint that sorts first under Node.Less.
type edgeID struct {
	lo, hi int
}

// edgeOf returns the canonical edgeID for arena indices u and v.
func (g *GridGraph) edgeOf(u, v int) edgeID {
	if g.node(v).Less(g.node(u)) {
		u, v = v, u
	}

	return edgeID{lo: u, hi: v}
}

// BlockEdge marks the edge between a and b as impassable.
// Idempotent: blocking an already blocked edge changes nothing.
// Returns ErrInvalidArgument if a or b is out of bounds or a == b.
// A non-adjacent pair is recorded but never blocks anything.
// Complexity: O(1).
func (g *GridGraph) BlockEdge(a, b Node) error {
	return g.setBlocked(a, b, true)
}

// UnblockEdge clears the block on the edge between a and b.
// Idempotent; validation as for BlockEdge.
// Complexity: O(1).
func (g *GridGraph) UnblockEdge(a, b Node) error {
	return g.setBlocked(a, b, false)
}

func (g *GridGraph) setBlocked(a, b Node, blocked bool) error {
	if err := g.checkEdge(a, b); err != nil {
		return err
	}
	id := g.edgeOf(g.index(a), g.index(b))

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.blocked[id] == blocked {
		return nil
	}
	if blocked {
		g.blocked[id] = true
	} else {
		delete(g.blocked, id)
	}
	g.revision++
	g.logger.Debug("gridgraph: registry changed",
		slog.String("edge", EdgeKey(a, b)),
		slog.Bool("blocked", blocked),
		slog.Uint64("revision", g.revision),
	)

	return nil
}

// ToggleEdge flips the block on the edge between a and b and reports the new state.
func (g *GridGraph) ToggleEdge(a, b Node) (bool, error) {
	if err := g.checkEdge(a, b); err != nil {
		return false, err
	}
	id := g.edgeOf(g.index(a), g.index(b))

	g.mu.Lock()
	defer g.mu.Unlock()
	now := !g.blocked[id]
	if now {
		g.blocked[id] = true
	} else {
		delete(g.blocked, id)
	}
	g.revision++
	g.logger.Debug("gridgraph: registry changed",
		slog.String("edge", EdgeKey(a, b)),
		slog.Bool("blocked", now),
		slog.Uint64("revision", g.revision),
	)

	return now, nil
}

// IsBlocked reports whether the edge between a and b is blocked.
// Edges never touched report false.
func (g *GridGraph) IsBlocked(a, b Node) (bool, error) {
	if err := g.checkEdge(a, b); err != nil {
		return false, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.blocked[g.edgeOf(g.index(a), g.index(b))], nil
}

// BlockedEdges returns every blocked edge ordered by (A.X, A.Y, B.X, B.Y).
func (g *GridGraph) BlockedEdges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.blocked))
	for id := range g.blocked {
		out = append(out, Edge{A: g.node(id.lo), B: g.node(id.hi)})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(p, q Edge) int {
		return cmp.Or(
			cmp.Compare(p.A.X, q.A.X),
			cmp.Compare(p.A.Y, q.A.Y),
			cmp.Compare(p.B.X, q.B.X),
			cmp.Compare(p.B.Y, q.B.Y),
		)
	})

	return out
}

// Reset unblocks every edge.
func (g *GridGraph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.blocked) == 0 {
		return
	}
	clear(g.blocked)
	g.revision++
}

// Revision returns a counter that changes whenever the registry does.
// Equal revisions mean the same set of blocked edges.
func (g *GridGraph) Revision() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.revision
}

// snapshot copies the registry, with its revision, so a long-lived search
// is isolated from later edits.
func (g *GridGraph) snapshot() (map[edgeID]bool, uint64) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return maps.Clone(g.blocked), g.revision
}

// edgeIDs validates every edge and returns their canonical ids.
func (g *GridGraph) edgeIDs(edges []Edge) ([]edgeID, error) {
	ids := make([]edgeID, 0, len(edges))
	for _, e := range edges {
		if err := g.checkEdge(e.A, e.B); err != nil {
			return nil, err
		}
		ids = append(ids, g.edgeOf(g.index(e.A), g.index(e.B)))
	}

	return ids, nil
}

// BlockEdges blocks every edge in one step and returns how many were not
// blocked before. Either all edges are valid and applied together, under
// a single revision bump, or ErrInvalidArgument is returned and the
// registry is untouched. Searches never observe part of the batch.
// Complexity: O(len(edges)).
func (g *GridGraph) BlockEdges(edges []Edge) (int, error) {
	ids, err := g.edgeIDs(edges)
	if err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	added := 0
	for _, id := range ids {
		if !g.blocked[id] {
			g.blocked[id] = true
			added++
		}
	}
	if added > 0 {
		g.revision++
		g.logger.Debug("gridgraph: registry batch blocked",
			slog.Int("added", added),
			slog.Uint64("revision", g.revision),
		)
	}

	return added, nil
}

// ReplaceBlocked makes edges the complete set of blocked edges in one step:
// validation first, then a single swap under the write lock. The revision
// is bumped once, and only when the set actually changes.
// Complexity: O(len(edges)).
func (g *GridGraph) ReplaceBlocked(edges []Edge) error {
	ids, err := g.edgeIDs(edges)
	if err != nil {
		return err
	}
	next := make(map[edgeID]bool, len(ids))
	for _, id := range ids {
		next[id] = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if maps.Equal(g.blocked, next) {
		return nil
	}
	g.blocked = next
	g.revision++
	g.logger.Debug("gridgraph: registry replaced",
		slog.Int("blocked", len(next)),
		slog.Uint64("revision", g.revision),
	)

	return nil
}
