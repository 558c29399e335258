package maze

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimensions is returned by [New] and [Generate] when width or
	// height is not positive. A maze always covers a full rectangular grid.
	ErrInvalidDimensions = errors.New("width and height must be positive")

	// ErrMissingEndpoint is returned by [Solve] when the maze's start or end
	// cell lies outside the grid. This is a recoverable input error, not a
	// solver failure.
	ErrMissingEndpoint = errors.New("start or end cell missing from maze")
)

// Cell identifies one grid square by its integer coordinates.
// The textual form is "x,y" (see [Cell.String] and [ParseCell]).
type Cell struct {
	X int // column, 0-based from the left
	Y int // row, 0-based from the top
}

// String returns the cell's textual form, e.g. "3,7".
func (c Cell) String() string { return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) }

// ParseCell parses the "x,y" textual form produced by [Cell.String].
func ParseCell(s string) (Cell, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return Cell{}, fmt.Errorf("parse cell %q: want \"x,y\"", s)
	}
	xv, err := strconv.Atoi(x)
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, err)
	}
	yv, err := strconv.Atoi(y)
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: %w", s, err)
	}
	return Cell{X: xv, Y: yv}, nil
}

// Link is an unordered pair of cells representing a passable connection.
// Links are stored in canonical order so that equality and map lookups
// succeed regardless of which endpoint is named first. Always construct
// links with [NewLink]; a hand-built Link may compare unequal to its
// reversed twin.
type Link struct {
	A, B Cell
}

// NewLink creates a link with the endpoints in canonical order.
// NewLink(a, b) and NewLink(b, a) are identical values.
func NewLink(a, b Cell) Link {
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		a, b = b, a
	}
	return Link{A: a, B: b}
}

// String returns the link's textual form, e.g. "0,0-1,0".
func (l Link) String() string { return l.A.String() + "-" + l.B.String() }

// ParseLink parses the "A-B" textual form. Both orderings of the endpoints
// parse to the same canonical Link.
func ParseLink(s string) (Link, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return Link{}, fmt.Errorf("parse link %q: want \"x,y-x,y\"", s)
	}
	ca, err := ParseCell(a)
	if err != nil {
		return Link{}, fmt.Errorf("parse link %q: %w", s, err)
	}
	cb, err := ParseCell(b)
	if err != nil {
		return Link{}, fmt.Errorf("parse link %q: %w", s, err)
	}
	return NewLink(ca, cb), nil
}

// Maze is a rectangular grid of cells with passable links between adjacent
// cells. Absence of a link between two adjacent cells means a wall. A maze
// always contains exactly Width×Height cells, one per coordinate pair in
// range; only the link set varies.
//
// Links are only ever added, never removed. The zero value is not usable -
// use [New] to create a valid instance. Maze is not safe for concurrent
// mutation without external synchronization.
type Maze struct {
	Width  int
	Height int
	Start  Cell
	End    Cell

	links map[Link]struct{}
}

// New creates a maze with all cells and no links. Start and End default to
// the top-left and bottom-right corners. Returns [ErrInvalidDimensions] if
// either dimension is not positive.
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Maze{
		Width:  width,
		Height: height,
		Start:  Cell{0, 0},
		End:    Cell{width - 1, height - 1},
		links:  make(map[Link]struct{}),
	}, nil
}

// AddLink records a passable connection between a and b.
// No adjacency validation is performed; callers are trusted to pass
// grid-adjacent cells. Adding an existing link is a no-op.
func (m *Maze) AddLink(a, b Cell) {
	m.links[NewLink(a, b)] = struct{}{}
}

// Linked reports whether a passable connection exists between a and b,
// in either order.
func (m *Maze) Linked(a, b Cell) bool {
	_, ok := m.links[NewLink(a, b)]
	return ok
}

// HasLink reports whether the maze contains the given link.
func (m *Maze) HasLink(l Link) bool {
	return m.Linked(l.A, l.B)
}

// LinkCount returns the number of links in the maze.
func (m *Maze) LinkCount() int { return len(m.links) }

// Links returns all links sorted in canonical order for deterministic
// iteration. The returned slice is a copy.
func (m *Maze) Links() []Link {
	out := slices.Collect(maps.Keys(m.links))
	slices.SortFunc(out, compareLinks)
	return out
}

func compareCells(a, b Cell) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

func compareLinks(a, b Link) int {
	if c := compareCells(a.A, b.A); c != 0 {
		return c
	}
	return compareCells(a.B, b.B)
}

// Contains reports whether c lies inside the grid.
func (m *Maze) Contains(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Cells returns every cell in row-major order (left to right, top to
// bottom). This order is the canonical iteration order used by the
// connectivity analyzer.
func (m *Maze) Cells() []Cell {
	out := make([]Cell, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

// CellCount returns the number of cells in the grid.
func (m *Maze) CellCount() int { return m.Width * m.Height }

// Neighbors returns the cells directly reachable from c through links,
// in a fixed right, down, left, up probe order.
func (m *Maze) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X, c.Y - 1},
	}
	var out []Cell
	for _, n := range candidates {
		if m.Contains(n) && m.Linked(c, n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a structural deep copy. Mutating the copy never affects
// the original.
func (m *Maze) Clone() *Maze {
	return &Maze{
		Width:  m.Width,
		Height: m.Height,
		Start:  m.Start,
		End:    m.End,
		links:  maps.Clone(m.links),
	}
}

// Equal reports whether two mazes have identical dimensions, endpoints,
// and link sets.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil {
		return false
	}
	return m.Width == other.Width &&
		m.Height == other.Height &&
		m.Start == other.Start &&
		m.End == other.End &&
		maps.Equal(m.links, other.links)
}
