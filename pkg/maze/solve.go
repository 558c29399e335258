package maze

// Solution is the result of one solver run.
type Solution struct {
	// Solved reports whether a path from start to end exists.
	Solved bool `json:"solved"`

	// Path lists the cells of a shortest path, start first and end last.
	// Empty when Solved is false.
	Path []Cell `json:"path"`

	// Length is the number of cells on the path (not edges).
	Length int `json:"length"`

	// Error describes why the maze could not be solved, e.g. "no path".
	// Empty when Solved is true.
	Error string `json:"error,omitempty"`
}

// Solve finds a shortest path from the maze's start to its end using
// breadth-first search over the link graph. Each queue entry carries its
// whole path, so the first dequeued entry reaching the end is a shortest
// path by construction; ties among equal-length paths fall to enqueue order.
//
// A maze whose start or end lies outside the grid yields
// [ErrMissingEndpoint]. An unreachable end is a normal outcome, reported
// as an unsolved Solution with a nil error.
func Solve(m *Maze) (Solution, error) {
	if !m.Contains(m.Start) || !m.Contains(m.End) {
		return Solution{}, ErrMissingEndpoint
	}

	queue := [][]Cell{{m.Start}}
	visited := map[Cell]bool{m.Start: true}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		cur := path[len(path)-1]

		if cur == m.End {
			return Solution{Solved: true, Path: path, Length: len(path)}, nil
		}

		for _, n := range m.Neighbors(cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			next := make([]Cell, len(path), len(path)+1)
			copy(next, path)
			queue = append(queue, append(next, n))
		}
	}

	return Solution{Path: []Cell{}, Error: "no path"}, nil
}
