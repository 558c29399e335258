package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mazeforge/pkg/maze"
)

// Default rendering parameters.
const (
	DefaultCellSize = 24 // pixels per cell
	DefaultMargin   = 8  // outer margin in pixels
)

// SVGOption configures the wall renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize  int
	margin    int
	solution  []maze.Cell
	endpoints bool
}

// WithCellSize sets the pixel size of one grid cell.
func WithCellSize(px int) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.cellSize = px
		}
	}
}

// WithMargin sets the outer margin around the maze in pixels.
func WithMargin(px int) SVGOption {
	return func(r *svgRenderer) {
		if px >= 0 {
			r.margin = px
		}
	}
}

// WithSolution overlays the given path as a line through cell centers.
// Pass the Path of a solved [maze.Solution].
func WithSolution(path []maze.Cell) SVGOption {
	return func(r *svgRenderer) { r.solution = path }
}

// WithEndpoints marks the start and end cells with filled circles.
func WithEndpoints() SVGOption {
	return func(r *svgRenderer) { r.endpoints = true }
}

// SVG renders the maze as a standalone SVG document: one line segment per
// wall, plus optional solution overlay and endpoint markers. A wall is
// drawn wherever two adjacent cells are not linked, and around the whole
// outer border.
func SVG(m *maze.Maze, opts ...SVGOption) []byte {
	r := &svgRenderer{cellSize: DefaultCellSize, margin: DefaultMargin}
	for _, opt := range opts {
		opt(r)
	}

	cs := r.cellSize
	width := m.Width*cs + 2*r.margin
	height := m.Height*cs + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="white"/>`+"\n", width, height)
	buf.WriteString(`  <g stroke="black" stroke-width="2" stroke-linecap="round">` + "\n")

	// Walls: each cell owns its top and left edge; the last row and column
	// contribute the outer bottom and right border.
	for _, c := range m.Cells() {
		x0 := r.margin + c.X*cs
		y0 := r.margin + c.Y*cs
		x1 := x0 + cs
		y1 := y0 + cs

		if c.Y == 0 || !m.Linked(c, maze.Cell{X: c.X, Y: c.Y - 1}) {
			wall(&buf, x0, y0, x1, y0)
		}
		if c.X == 0 || !m.Linked(c, maze.Cell{X: c.X - 1, Y: c.Y}) {
			wall(&buf, x0, y0, x0, y1)
		}
		if c.Y == m.Height-1 {
			wall(&buf, x0, y1, x1, y1)
		}
		if c.X == m.Width-1 {
			wall(&buf, x1, y0, x1, y1)
		}
	}
	buf.WriteString("  </g>\n")

	if len(r.solution) > 1 {
		buf.WriteString(`  <polyline fill="none" stroke="#d33" stroke-width="3" points="`)
		for i, c := range r.solution {
			if i > 0 {
				buf.WriteByte(' ')
			}
			cx := r.margin + c.X*cs + cs/2
			cy := r.margin + c.Y*cs + cs/2
			fmt.Fprintf(&buf, "%d,%d", cx, cy)
		}
		buf.WriteString(`"/>` + "\n")
	}

	if r.endpoints {
		dot(&buf, r, m.Start, "#2a2")
		dot(&buf, r, m.End, "#d33")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func wall(buf *bytes.Buffer, x0, y0, x1, y1 int) {
	fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x0, y0, x1, y1)
}

func dot(buf *bytes.Buffer, r *svgRenderer, c maze.Cell, fill string) {
	cx := r.margin + c.X*r.cellSize + r.cellSize/2
	cy := r.margin + c.Y*r.cellSize + r.cellSize/2
	fmt.Fprintf(buf, `  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
		cx, cy, r.cellSize/4, fill)
}
