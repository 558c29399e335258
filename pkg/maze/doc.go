// Package maze implements the core maze engine: the grid and link data
// model, a union-find connectivity analyzer, a randomized spanning-tree
// generator with deterministic seed-packet support, and a breadth-first
// solver.
//
// # Data model
//
// A [Maze] is a rectangular grid of [Cell] coordinates joined by unordered
// [Link] pairs. A link between two adjacent cells means a passage; its
// absence means a wall. Mazes are only ever mutated by adding links.
//
// # Generation
//
// [Generate] builds a random spanning structure by repeatedly linking two
// cells that sit on a boundary between connected components, until a single
// component remains:
//
//	result, err := maze.Generate(maze.GenerateOptions{Width: 12, Height: 8})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Maze.LinkCount()) // 95, a spanning tree
//
// Passing a seed packet makes generation fully deterministic:
//
//	result, _ := maze.Generate(maze.GenerateOptions{
//	    Width:      4,
//	    Height:     4,
//	    SeedPacket: packet, // one seed per generation step, consumed tail-first
//	})
//
// # Analysis and solving
//
// [Analyze] partitions the cells into connected groups and enumerates the
// boundaries between them; [Solve] finds a shortest start-to-end path:
//
//	sol, err := maze.Solve(result.Maze)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sol.Length, sol.Path)
package maze
