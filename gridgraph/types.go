// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrInvalidArgument indicates out-of-bounds or identical coordinates,
// non-positive dimensions, or a bad option value.
// Every validation failure wraps it; test with errors.Is.
var ErrInvalidArgument = errors.New("gridgraph: invalid argument")

// Infinity is the distance of a node the search has not reached.
const Infinity = math.MaxInt

// Node is a grid cell identified by its coordinates.
// Nodes are plain values: two Nodes with equal X and Y are the same cell.
type Node struct {
	X, Y int
}

// String returns the canonical form "(x,y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// Less orders nodes first by X, then by Y.
func (n Node) Less(o Node) bool {
	if n.X != o.X {
		return n.X < o.X
	}

	return n.Y < o.Y
}

// Edge is an undirected node pair with endpoints in canonical order (A.Less(B)).
// Registry entries are usually lattice edges but need not be.
type Edge struct {
	A, B Node
}

// NewEdge returns the canonical Edge between a and b regardless of argument order.
func NewEdge(a, b Node) Edge {
	if b.Less(a) {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// Key returns the canonical edge key, e.g. "(0,1)(1,0)".
func (e Edge) Key() string {
	return e.A.String() + e.B.String()
}

// EdgeKey returns the canonical key of the undirected edge between a and b.
// EdgeKey(a, b) == EdgeKey(b, a) for every pair.
func EdgeKey(a, b Node) string {
	return NewEdge(a, b).Key()
}

// Options configures a GridGraph at construction.
type Options struct {
	// Logger receives Debug-level search and registry events.
	Logger *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger routes engine diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// SearchOptions configures a single FindPath or Stepper run.
type SearchOptions struct {
	// Ctx is polled once per iteration; a cancelled context aborts the search.
	Ctx context.Context

	// OnFinalize is called each time a node leaves the frontier,
	// with its final distance from the start. nil disables it.
	OnFinalize func(n Node, dist int)

	// MaxDistance stops the search once the closest frontier node is
	// farther than this many steps. Infinity disables the cap.
	MaxDistance int

	// Revision, if set, receives the registry revision the search ran against.
	Revision *uint64

	// err records an invalid option; surfaced by FindPath.
	err error
}

// SearchOption is a functional option for FindPath and NewStepper.
type SearchOption func(*SearchOptions)

// DefaultSearchOptions returns SearchOptions with a background context,
// no hook and no distance cap.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Ctx:         context.Background(),
		MaxDistance: Infinity,
	}
}

// WithContext sets the context polled by the search loop.
func WithContext(ctx context.Context) SearchOption {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFinalize registers a hook run when a node is finalized.
// FindPath then searches a copy of the registry and holds no lock while
// the hook runs; edits the hook makes are not seen by that search.
func WithOnFinalize(fn func(n Node, dist int)) SearchOption {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithMaxDistance caps the explored distance.
//
//	d >= 0: nodes farther than d steps are never finalized
//	d < 0:  invalid option → ErrInvalidArgument
func WithMaxDistance(d int) SearchOption {
	return func(o *SearchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrInvalidArgument, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithObservedRevision stores into dst the registry revision seen under the
// search's read lock, letting callers key cached results precisely.
func WithObservedRevision(dst *uint64) SearchOption {
	return func(o *SearchOptions) {
		o.Revision = dst
	}
}
