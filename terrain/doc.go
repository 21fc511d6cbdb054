// Package terrain blocks lattice edges of a gridgraph.GridGraph from a
// smooth OpenSimplex noise field, producing cave-like walls instead of
// uniformly scattered ones.
//
// Each edge is sampled at its midpoint: (x+0.5, y) for horizontal edges and
// (x, y+0.5) for vertical ones, scaled by Options.Scale. Edges whose
// normalized noise value (in [0,1]) exceeds Options.Threshold are blocked.
// The same seed always produces the same walls.
//
// Errors:
//
//   - ErrNilGraph: Generate was handed a nil graph.
//   - ErrInvalidOption: Scale ≤ 0 or Threshold outside [0,1].
package terrain
