// Package pipeline provides the core generate → solve → render pipeline
// for mazeforge.
//
// This package implements the complete pipeline that can be used by CLI
// and API components. By centralizing this logic, we ensure consistent
// behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: build a maze, deterministically when a seed packet is given
//  2. Solve: find the shortest start-to-end path with BFS
//  3. Render: produce output artifacts (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Deterministic results (seeded mazes, solutions, artifacts) are cached.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:   12,
//	    Height:  8,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/matzehuels/mazeforge/pkg/errors"
	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default maze width in cells.
	DefaultWidth = 12

	// DefaultHeight is the default maze height in cells.
	DefaultHeight = 8

	// DefaultCellSize is the default rendered cell size in pixels.
	DefaultCellSize = render.DefaultCellSize

	// DefaultCacheTTL is how long cached mazes and artifacts live.
	DefaultCacheTTL = 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options configures one pipeline execution.
type Options struct {
	// Width and Height are the maze dimensions.
	// Zero values default to DefaultWidth and DefaultHeight.
	Width  int
	Height int

	// SeedPacket makes generation deterministic and cacheable.
	// Empty means ambient randomness (and no maze caching).
	SeedPacket []int

	// MaxIterations caps generation steps. Zero means run to completion.
	MaxIterations int

	// Solve controls whether the solver stage runs.
	Solve bool

	// Formats lists the artifacts to render. Empty skips the render stage.
	Formats []string

	// CellSize is the rendered cell size in pixels for wall SVG output.
	CellSize int

	// ShowSolution overlays the solved path on wall SVG output.
	// Implies Solve.
	ShowSolution bool

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateSeedPacket(o.SeedPacket); err != nil {
		return err
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.ShowSolution {
		o.Solve = true
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	return nil
}

// Stats captures per-stage timings and counters.
type Stats struct {
	GenerateTime time.Duration
	SolveTime    time.Duration
	RenderTime   time.Duration
	LinksAdded   int
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	MazeHit     bool
	SolutionHit bool
	ArtifactHit bool
}

// Result is the outcome of one pipeline execution.
type Result struct {
	// Maze is the generated maze.
	Maze *maze.Maze

	// Completed reports whether generation reached full connectivity.
	Completed bool

	// Solution is set when the solve stage ran.
	Solution *maze.Solution

	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	// MazeHash is the SHA-256 of the maze's JSON form, used in cache keys
	// and API responses.
	MazeHash string

	Stats     Stats
	CacheInfo CacheInfo
}
