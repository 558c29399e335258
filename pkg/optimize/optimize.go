// Package optimize searches for mazes with maximally long shortest
// solutions by greedy coordinate ascent over the seed-packet space.
//
// A seed packet of length width×height fully determines one generated maze
// (see [maze.GenerateOptions.SeedPacket]). The search picks evenly spaced
// anchor indices in the packet and, for each anchor, repeatedly increments
// that entry, regenerates, solves, and keeps the packet whenever the
// solution got strictly longer. Anchors are never revisited and entries are
// never decremented, so this finds a local optimum along the sampled
// anchors, not a global one.
//
// Note the consumption-order coupling: the generator pops seeds from the
// packet's tail, so anchor index 0 governs the final generation step. The
// search therefore spends its earliest effort perturbing the end of the
// generation sequence. This is deliberate and pinned by tests.
package optimize

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/observability"
	"github.com/matzehuels/mazeforge/pkg/rng"
)

// Defaults for the coordinate-ascent search.
const (
	// DefaultIterations is the number of increments tried per anchor.
	DefaultIterations = 100

	// DefaultDivisions controls the anchor spacing: the packet is sampled
	// at round(len/divisions)-sized steps.
	DefaultDivisions = 10
)

// Options configures one optimizer run.
type Options struct {
	// Width and Height are the maze dimensions. Both must be positive.
	Width  int
	Height int

	// Iterations is the number of increment attempts per anchor.
	// Defaults to [DefaultIterations].
	Iterations int

	// Divisions controls anchor spacing. The step between anchors is
	// round(packetLen/Divisions), clamped to at least 1.
	// Defaults to [DefaultDivisions].
	Divisions int

	// Source supplies the ambient randomness used to seed the initial
	// packet. Defaults to [rng.System]. With a deterministic source the
	// whole search is reproducible.
	Source rng.Source
}

func (o *Options) setDefaults() {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Divisions <= 0 {
		o.Divisions = DefaultDivisions
	}
	if o.Source == nil {
		o.Source = rng.System()
	}
}

// Result is the outcome of one optimizer run.
type Result struct {
	// Maze is the best maze found.
	Maze *maze.Maze

	// Solution is the shortest solution of the best maze.
	Solution maze.Solution

	// Length is the cell count of that solution, the optimization target.
	Length int

	// SeedPacket reproduces Maze exactly when passed to [maze.Generate]
	// with the same dimensions.
	SeedPacket []int
}

// Run performs the coordinate-ascent search and returns the best maze
// found. The recorded best length is non-decreasing over the whole sweep.
// Returns [maze.ErrInvalidDimensions] for non-positive dimensions. A nil
// result with a nil error means no candidate solved, which cannot happen
// for fully generated mazes but callers should still check.
//
// The context is consulted between anchor blocks only; the engine itself
// has no cancellation points.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	start := time.Now()

	if opts.Width < 1 || opts.Height < 1 {
		return nil, maze.ErrInvalidDimensions
	}

	packet := make([]int, opts.Width*opts.Height)
	for i := range packet {
		packet[i] = rng.Intn(opts.Source, 1<<31)
	}

	step := int(math.Round(float64(len(packet)) / float64(opts.Divisions)))
	if step < 1 {
		step = 1
	}

	var best *Result
	for anchor := 0; anchor < len(packet); anchor += step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		observability.Optimizer().OnAnchorStart(ctx, anchor, len(packet))

		for i := 0; i < opts.Iterations; i++ {
			packet[anchor]++

			res, err := maze.Generate(maze.GenerateOptions{
				Width:      opts.Width,
				Height:     opts.Height,
				SeedPacket: packet,
			})
			if err != nil {
				return nil, err
			}
			sol, err := maze.Solve(res.Maze)
			if err != nil {
				return nil, err
			}
			if !sol.Solved {
				continue
			}
			if best != nil && sol.Length <= best.Length {
				continue
			}

			best = &Result{
				Maze:       res.Maze,
				Solution:   sol,
				Length:     sol.Length,
				SeedPacket: append([]int(nil), packet...),
			}
			observability.Optimizer().OnImprove(ctx, anchor, sol.Length)
		}
	}

	bestLength := 0
	if best != nil {
		bestLength = best.Length
	}
	observability.Optimizer().OnComplete(ctx, bestLength, time.Since(start))

	return best, nil
}
