package maze

// Analysis is the result of one connectivity pass over a maze.
type Analysis struct {
	// Groups partitions the cells into connected components. Groups appear
	// in order of their first member, and members appear in row-major cell
	// order. A cell with no links forms a singleton group.
	Groups [][]Cell

	// Boundaries lists every adjacent cell pair whose endpoints lie in
	// different groups. Only the right and down neighbor of each cell are
	// scanned, so each boundary appears exactly once. An empty list means
	// the maze is fully connected.
	Boundaries []Link
}

// Analyze computes the connected components of a maze and the boundaries
// between them, from scratch. It is a pure function: the maze is not
// modified and repeated calls yield identical results.
//
// The union-find state is rebuilt on every call, which makes one pass cost
// linear in cells plus links. The generator re-analyzes after every added
// link, so full generation is superlinear in cell count; that trade of
// simplicity for speed is deliberate.
func Analyze(m *Maze) *Analysis {
	cells := m.Cells()

	leader := make(map[Cell]Cell, len(cells))
	for _, c := range cells {
		leader[c] = c
	}
	for l := range m.links {
		union(leader, l.A, l.B)
	}

	a := &Analysis{}
	groupIndex := make(map[Cell]int, len(cells))
	for _, c := range cells {
		root := find(leader, c)
		i, ok := groupIndex[root]
		if !ok {
			i = len(a.Groups)
			groupIndex[root] = i
			a.Groups = append(a.Groups, nil)
		}
		a.Groups[i] = append(a.Groups[i], c)
	}

	for _, c := range cells {
		right := Cell{c.X + 1, c.Y}
		down := Cell{c.X, c.Y + 1}
		if m.Contains(right) && find(leader, c) != find(leader, right) {
			a.Boundaries = append(a.Boundaries, NewLink(c, right))
		}
		if m.Contains(down) && find(leader, c) != find(leader, down) {
			a.Boundaries = append(a.Boundaries, NewLink(c, down))
		}
	}

	return a
}

// find returns the root of c's component, compressing every pointer on the
// walked chain. Implemented as two iterative passes so stack depth never
// scales with chain length.
func find(leader map[Cell]Cell, c Cell) Cell {
	root := c
	for leader[root] != root {
		root = leader[root]
	}
	for c != root {
		next := leader[c]
		leader[c] = root
		c = next
	}
	return root
}

// union merges the components of a and b. The second argument's root always
// wins the leadership; there is no rank balancing.
func union(leader map[Cell]Cell, a, b Cell) {
	leader[find(leader, a)] = find(leader, b)
}
