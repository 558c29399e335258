// Package render turns mazes into visual artifacts.
//
// Two renderers are provided:
//
//   - [SVG] draws the maze as walls on a grid, optionally overlaying the
//     solved path. The output is self-contained SVG with no external
//     resources.
//   - [ToDOT] exports the link graph in Graphviz DOT form, and [RenderSVG]
//     and [RenderPNG] rasterize it with Graphviz. The node-link view makes
//     the spanning structure itself visible, which is useful when
//     debugging generation.
//
// Renderers only read the maze; they never mutate it.
package render
