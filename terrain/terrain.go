package terrain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sentinel errors for terrain generation.
var (
	// ErrNilGraph indicates Generate received a nil graph.
	ErrNilGraph = errors.New("terrain: graph is nil")
	// ErrInvalidOption indicates an out-of-range option value.
	ErrInvalidOption = errors.New("terrain: invalid option")
)

// Options tunes the noise field.
type Options struct {
	// Seed selects the noise permutation.
	Seed int64
	// Scale converts cell coordinates to noise space; smaller is smoother.
	Scale float64
	// Threshold is the normalized noise level above which an edge is blocked.
	Threshold float64

	err error
}

// Option is a functional option for Generate and Walls.
type Option func(*Options)

// DefaultOptions returns Seed=1, Scale=0.35, Threshold=0.62, which blocks
// roughly a fifth of the edges.
func DefaultOptions() Options {
	return Options{
		Seed:      1,
		Scale:     0.35,
		Threshold: 0.62,
	}
}

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithScale sets the coordinate scale; must be positive.
func WithScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			o.err = fmt.Errorf("%w: Scale must be positive (%g)", ErrInvalidOption, scale)
			return
		}
		o.Scale = scale
	}
}

// WithThreshold sets the blocking threshold; must lie in [0,1].
func WithThreshold(th float64) Option {
	return func(o *Options) {
		if th < 0 || th > 1 {
			o.err = fmt.Errorf("%w: Threshold must be within [0,1] (%g)", ErrInvalidOption, th)
			return
		}
		o.Threshold = th
	}
}

// Walls returns the edges of a width×height lattice that the noise field
// blocks, in row-major order of their first endpoint (right edge before down edge).
func Walls(width, height int, opts ...Option) ([]gridgraph.Edge, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidOption, width, height)
	}

	noise := opensimplex.NewNormalized(cfg.Seed)
	var walls []gridgraph.Edge
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			here := gridgraph.Node{X: x, Y: y}
			// 1) horizontal edge (x,y)–(x+1,y), sampled at (x+0.5, y)
			if x+1 < width && noise.Eval2((float64(x)+0.5)*cfg.Scale, float64(y)*cfg.Scale) > cfg.Threshold {
				walls = append(walls, gridgraph.NewEdge(here, gridgraph.Node{X: x + 1, Y: y}))
			}
			// 2) vertical edge (x,y)–(x,y+1), sampled at (x, y+0.5)
			if y+1 < height && noise.Eval2(float64(x)*cfg.Scale, (float64(y)+0.5)*cfg.Scale) > cfg.Threshold {
				walls = append(walls, gridgraph.NewEdge(here, gridgraph.Node{X: x, Y: y + 1}))
			}
		}
	}

	return walls, nil
}

// Generate blocks every edge returned by Walls for g's dimensions in one
// batch and returns how many edges it blocked. Existing blocks are kept.
func Generate(g *gridgraph.GridGraph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	walls, err := Walls(g.Width(), g.Height(), opts...)
	if err != nil {
		return 0, err
	}
	if _, err := g.BlockEdges(walls); err != nil {
		return 0, fmt.Errorf("terrain: blocking walls: %w", err)
	}

	return len(walls), nil
}
