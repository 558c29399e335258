package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazeforge/pkg/maze"
)

// ToDOT converts a maze's link graph to Graphviz DOT format. Cells become
// nodes laid out as plain points and links become undirected edges, making
// the spanning structure visible as a graph rather than as walls. The
// start and end cells are highlighted.
//
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(m *maze.Maze) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, width=0.25, fixedsize=true, fontsize=8];\n")
	buf.WriteString("\n")

	for _, c := range m.Cells() {
		attrs := fmt.Sprintf("pos=\"%d,%d!\"", c.X, -c.Y)
		switch c {
		case m.Start:
			attrs += ", style=filled, fillcolor=palegreen"
		case m.End:
			attrs += ", style=filled, fillcolor=lightcoral"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.String(), attrs)
	}

	buf.WriteString("\n")
	for _, l := range m.Links() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", l.A.String(), l.B.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
