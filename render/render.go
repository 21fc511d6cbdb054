// Package render lays a gridgraph.GridGraph out as a character canvas:
// cells on even columns and rows, the edges between them on odd ones.
//
//	S * *      S/E   start and end marks
//	-          *     cells on the path
//	. . *      .     other cells
//	           |     blocked horizontal edge (between x and x+1)
//	. . E      -     blocked vertical edge (between y and y+1)
//
// The canvas is (2·Width−1) × (2·Height−1) glyphs; the ASCII form trims
// trailing blanks from each line.
package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Kind classifies a glyph so front ends can style it.
type Kind int

const (
	// KindBlank is the filler between two edge slots.
	KindBlank Kind = iota
	// KindCell is a plain cell.
	KindCell
	// KindPath is a cell on the path.
	KindPath
	// KindStart marks the start cell.
	KindStart
	// KindEnd marks the end cell.
	KindEnd
	// KindOpen is an unblocked edge.
	KindOpen
	// KindWall is a blocked edge.
	KindWall
)

// Glyph is one canvas position.
type Glyph struct {
	Ch   rune
	Kind Kind
}

// Glyphs selects the characters used for each Kind.
type Glyphs struct {
	Cell, Path, Start, End rune
	WallH, WallV, Open     rune
}

// DefaultGlyphs returns the ASCII glyph set shown in the package doc.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Cell: '.', Path: '*', Start: 'S', End: 'E',
		WallH: '|', WallV: '-', Open: ' ',
	}
}

// Options configures a layout.
type Options struct {
	Start, End *gridgraph.Node
	Glyphs     Glyphs
}

// Option is a functional option for Layout and ASCII.
type Option func(*Options)

// WithStart marks n as the start cell.
func WithStart(n gridgraph.Node) Option {
	return func(o *Options) { o.Start = &n }
}

// WithEnd marks n as the end cell.
func WithEnd(n gridgraph.Node) Option {
	return func(o *Options) { o.End = &n }
}

// WithGlyphs replaces the glyph set.
func WithGlyphs(gl Glyphs) Option {
	return func(o *Options) { o.Glyphs = gl }
}

// Layout returns the canvas rows for g with path highlighted.
// Path nodes outside the grid are ignored.
func Layout(g *gridgraph.GridGraph, path []gridgraph.Node, opts ...Option) [][]Glyph {
	cfg := Options{Glyphs: DefaultGlyphs()}
	for _, opt := range opts {
		opt(&cfg)
	}
	gl := cfg.Glyphs

	onPath := make(map[gridgraph.Node]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}
	blocked := make(map[gridgraph.Edge]bool)
	for _, e := range g.BlockedEdges() {
		blocked[e] = true
	}

	w, h := 2*g.Width()-1, 2*g.Height()-1
	rows := make([][]Glyph, h)
	for cy := 0; cy < h; cy++ {
		row := make([]Glyph, w)
		for cx := 0; cx < w; cx++ {
			x, y := cx/2, cy/2
			here := gridgraph.Node{X: x, Y: y}
			switch {
			case cx%2 == 0 && cy%2 == 0:
				row[cx] = cellGlyph(here, onPath, cfg)
			case cy%2 == 0: // between (x,y) and (x+1,y)
				row[cx] = edgeGlyph(blocked[gridgraph.NewEdge(here, gridgraph.Node{X: x + 1, Y: y})], gl.WallH, gl.Open)
			case cx%2 == 0: // between (x,y) and (x,y+1)
				row[cx] = edgeGlyph(blocked[gridgraph.NewEdge(here, gridgraph.Node{X: x, Y: y + 1})], gl.WallV, gl.Open)
			default:
				row[cx] = Glyph{Ch: ' ', Kind: KindBlank}
			}
		}
		rows[cy] = row
	}

	return rows
}

func cellGlyph(n gridgraph.Node, onPath map[gridgraph.Node]bool, cfg Options) Glyph {
	switch {
	case cfg.Start != nil && *cfg.Start == n:
		return Glyph{Ch: cfg.Glyphs.Start, Kind: KindStart}
	case cfg.End != nil && *cfg.End == n:
		return Glyph{Ch: cfg.Glyphs.End, Kind: KindEnd}
	case onPath[n]:
		return Glyph{Ch: cfg.Glyphs.Path, Kind: KindPath}
	default:
		return Glyph{Ch: cfg.Glyphs.Cell, Kind: KindCell}
	}
}

func edgeGlyph(blocked bool, wall, open rune) Glyph {
	if blocked {
		return Glyph{Ch: wall, Kind: KindWall}
	}

	return Glyph{Ch: open, Kind: KindOpen}
}

// ASCII renders g as text, one canvas row per line, each line terminated
// by a newline and stripped of trailing blanks.
func ASCII(g *gridgraph.GridGraph, path []gridgraph.Node, opts ...Option) string {
	var sb strings.Builder
	for _, row := range Layout(g, path, opts...) {
		line := make([]rune, len(row))
		for i, gl := range row {
			line[i] = gl.Ch
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// CellPos maps a grid node to its canvas column and row.
func CellPos(n gridgraph.Node) (col, row int) {
	return 2 * n.X, 2 * n.Y
}
