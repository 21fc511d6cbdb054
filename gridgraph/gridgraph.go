package gridgraph

import (
	"fmt"
	"log/slog"
	"sync"
)

// offsets4 lists orthogonal neighbor offsets in the order Neighbors reports
// them: left, up, right, down.
var offsets4 = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// GridGraph is a Width×Height lattice of unit-distance cells with a
// registry of blocked edges. Dimensions are fixed at construction; the
// registry is the only mutable state.
type GridGraph struct {
	mu sync.RWMutex // guards blocked and revision

	width, height int
	blocked       map[edgeID]bool // canonical edge → blocked; absent means open
	revision      uint64          // bumped on every effective registry change
	logger        *slog.Logger
}

// New constructs an unobstructed width×height GridGraph.
// Returns ErrInvalidArgument if either dimension is below 1.
// Complexity: O(1).
func New(width, height int, opts ...Option) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &GridGraph{
		width:   width,
		height:  height,
		blocked: make(map[edgeID]bool),
		logger:  cfg.Logger,
	}, nil
}

// Width returns the number of columns.
func (g *GridGraph) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridGraph) Height() int { return g.height }

// Len returns the number of nodes, Width×Height.
func (g *GridGraph) Len() int { return g.width * g.height }

// InBounds reports whether n lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *GridGraph) InBounds(n Node) bool {
	return n.X >= 0 && n.X < g.width && n.Y >= 0 && n.Y < g.height
}

// Nodes returns every node in row-major order.
func (g *GridGraph) Nodes() []Node {
	out := make([]Node, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		out = append(out, g.node(i))
	}

	return out
}

// index maps n to its row-major arena index y*Width + x.
func (g *GridGraph) index(n Node) int {
	return n.Y*g.width + n.X
}

// node converts an arena index back to its Node.
func (g *GridGraph) node(i int) Node {
	return Node{X: i % g.width, Y: i / g.width}
}

// checkNode returns ErrInvalidArgument when n is out of bounds.
func (g *GridGraph) checkNode(n Node) error {
	if !g.InBounds(n) {
		return fmt.Errorf("%w: node %s outside %dx%d grid", ErrInvalidArgument, n, g.width, g.height)
	}

	return nil
}

// checkEdge validates that a and b are in bounds and distinct. Pairs that
// are not lattice neighbors are accepted; their flag never affects a search.
func (g *GridGraph) checkEdge(a, b Node) error {
	if err := g.checkNode(a); err != nil {
		return err
	}
	if err := g.checkNode(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: edge endpoints are the same node %s", ErrInvalidArgument, a)
	}
	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of n whose connecting
// edge is not blocked, in the order left, up, right, down.
// A boxed-in cell yields an empty slice, not an error.
// Complexity: O(1).
func (g *GridGraph) Neighbors(n Node) ([]Node, error) {
	if err := g.checkNode(n); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var buf [4]int
	idx := g.neighborIndices(g.index(n), g.blocked, buf[:0])
	out := make([]Node, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.node(i))
	}

	return out, nil
}

// neighborIndices appends the open neighbors of arena index u to buf.
// The caller supplies the registry view (live under lock, or a snapshot).
func (g *GridGraph) neighborIndices(u int, blocked map[edgeID]bool, buf []int) []int {
	ux, uy := u%g.width, u/g.width
	for _, d := range offsets4 {
		vx, vy := ux+d[0], uy+d[1]
		if vx < 0 || vx >= g.width || vy < 0 || vy >= g.height {
			continue
		}
		v := vy*g.width + vx
		if blocked[g.edgeOf(u, v)] {
			continue
		}
		buf = append(buf, v)
	}

	return buf
}
