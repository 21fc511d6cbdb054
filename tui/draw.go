package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

var (
	styleCell    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleVisited = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMark    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// Draw paints the board and the status lines, then shows the screen.
func (a *App) Draw() {
	s := a.screen
	s.Clear()

	g := a.sess.Graph()
	var opts []render.Option
	if a.start != nil {
		opts = append(opts, render.WithStart(*a.start))
	}
	if a.end != nil {
		opts = append(opts, render.WithEnd(*a.end))
	}
	canvas := render.Layout(g, a.path, opts...)
	for row, line := range canvas {
		for col, gl := range line {
			s.SetContent(col, row, gl.Ch, nil, a.style(gl, col, row))
		}
	}

	y := len(canvas) + 1
	drawText(s, 0, y, styleStatus, a.status())
	drawText(s, 0, y+1, tcell.StyleDefault, a.message)

	cx, cy := render.CellPos(a.cursor)
	s.ShowCursor(cx, cy)
	s.Show()
}

func (a *App) style(gl render.Glyph, col, row int) tcell.Style {
	switch gl.Kind {
	case render.KindPath:
		return stylePath
	case render.KindStart, render.KindEnd:
		return styleMark
	case render.KindWall:
		return styleWall
	case render.KindCell:
		if a.stepper != nil && a.stepper.Finalized(gridgraph.Node{X: col / 2, Y: row / 2}) {
			return styleVisited
		}
		return styleCell
	}

	return tcell.StyleDefault
}

// status summarizes the board: marks, path, regions and revision.
func (a *App) status() string {
	g := a.sess.Graph()
	mark := func(n *gridgraph.Node) string {
		if n == nil {
			return "-"
		}
		return n.String()
	}
	path := "-"
	switch {
	case len(a.path) > 0:
		path = fmt.Sprintf("%d", len(a.path)-1)
	case a.searched && *a.start == *a.end:
		path = "0"
	case a.searched:
		path = "unreachable"
	}

	return fmt.Sprintf(" cursor %s  start %s  end %s  path %s  regions %d  rev %d ",
		a.cursor, mark(a.start), mark(a.end), path, len(g.Regions()), g.Revision())
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
