package maze

import (
	"slices"

	"github.com/matzehuels/mazeforge/pkg/rng"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Width and Height set the dimensions of a fresh maze.
	// Ignored when Initial is set.
	Width  int
	Height int

	// Initial is an existing maze to extend. It is deep-copied before any
	// mutation; the caller's maze is never touched. Its dimensions govern
	// the run.
	Initial *Maze

	// MaxIterations caps the number of links added. Zero means unbounded,
	// i.e. run until the maze is fully connected.
	MaxIterations int

	// SeedPacket supplies one PRNG seed per generation step, consumed from
	// the tail: the last element seeds the first step. While seeds remain,
	// each step draws from a fresh [rng.Seeded] built from the popped seed,
	// making the run deterministic; once the packet is exhausted the run
	// falls back to Source. The caller's slice is not modified.
	SeedPacket []int

	// Source is the ambient random source used when no seed packet entry
	// is available. Defaults to [rng.System].
	Source rng.Source
}

// GenerateResult is the outcome of one generation run.
type GenerateResult struct {
	// Maze is the generated (or extended) maze.
	Maze *Maze

	// Completed reports whether the maze ended as a single connected
	// component. False only when MaxIterations stopped the run early.
	Completed bool

	// LinksAdded is the number of links added during this run. For a fresh
	// maze run to completion this is exactly Width×Height−1, a spanning tree.
	LinksAdded int
}

// Generate builds a maze in which every cell is reachable from every other,
// by repeatedly linking a uniformly chosen boundary pair and re-analyzing
// connectivity until no boundaries remain (randomized Kruskal over
// components). With a seed packet covering every step the run is fully
// reproducible; see [GenerateOptions.SeedPacket].
//
// Returns [ErrInvalidDimensions] for a fresh maze with non-positive
// dimensions. A 1×1 maze is trivially complete with zero iterations.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	var m *Maze
	if opts.Initial != nil {
		m = opts.Initial.Clone()
	} else {
		var err error
		if m, err = New(opts.Width, opts.Height); err != nil {
			return nil, err
		}
	}

	ambient := opts.Source
	if ambient == nil {
		ambient = rng.System()
	}
	packet := slices.Clone(opts.SeedPacket)

	analysis := Analyze(m)
	added := 0
	for iter := 0; len(analysis.Boundaries) > 0; iter++ {
		if opts.MaxIterations > 0 && iter >= opts.MaxIterations {
			break
		}

		active := ambient
		if len(packet) > 0 {
			seed := packet[len(packet)-1]
			packet = packet[:len(packet)-1]
			active = rng.NewSeeded(uint32(seed))
		}

		b := analysis.Boundaries[rng.Intn(active, len(analysis.Boundaries))]
		m.AddLink(b.A, b.B)
		added++

		analysis = Analyze(m)
		if len(analysis.Boundaries) == 0 && len(analysis.Groups) > 1 {
			// Unreachable by construction: disconnected components always
			// share at least one boundary on a full grid. Bail instead of
			// spinning if the invariant is ever broken.
			break
		}
	}

	return &GenerateResult{
		Maze:       m,
		Completed:  len(analysis.Boundaries) == 0 && len(analysis.Groups) == 1,
		LinksAdded: added,
	}, nil
}
