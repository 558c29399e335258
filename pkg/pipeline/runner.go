package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazeforge/pkg/cache"
	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/mazeio"
	"github.com/matzehuels/mazeforge/pkg/observability"
	"github.com/matzehuels/mazeforge/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete generate → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Generate
	genStart := time.Now()
	m, completed, linksAdded, hit, err := r.generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Maze = m
	result.Completed = completed
	result.CacheInfo.MazeHit = hit
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.LinksAdded = linksAdded

	if data, err := mazeio.Marshal(m); err == nil {
		result.MazeHash = cache.Hash(data)
	}

	r.Logger.Info("generated maze",
		"size", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"links", m.LinkCount(),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Solve
	if opts.Solve {
		solveStart := time.Now()
		sol, hit, err := r.solve(ctx, m, result.MazeHash, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("solve: %w", err)
		}
		result.Solution = sol
		result.CacheInfo.SolutionHit = hit
		result.Stats.SolveTime = time.Since(solveStart)

		r.Logger.Info("solved maze",
			"solved", sol.Solved,
			"length", sol.Length,
			"duration", result.Stats.SolveTime)
	}

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, hit, err := r.renderAll(ctx, result, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.CacheInfo.ArtifactHit = hit
		result.Stats.RenderTime = time.Since(renderStart)

		r.Logger.Info("rendered artifacts",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// generate builds the maze, consulting the cache when the run is
// deterministic (a seed packet is present). linksAdded counts only links
// created by this run; a cache hit adds none.
func (r *Runner) generate(ctx context.Context, opts Options) (m *maze.Maze, completed bool, linksAdded int, hit bool, err error) {
	seeded := len(opts.SeedPacket) > 0
	observability.Pipeline().OnGenerateStart(ctx, opts.Width, opts.Height, seeded)
	start := time.Now()

	var key string
	if seeded && opts.MaxIterations == 0 {
		key = r.Keyer.MazeKey(opts.Width, opts.Height, cache.HashInts(opts.SeedPacket))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				if m, err := mazeio.Unmarshal(data); err == nil {
					observability.Cache().OnCacheHit(ctx, "maze")
					observability.Pipeline().OnGenerateComplete(ctx,
						opts.Width, opts.Height, m.LinkCount(), true, time.Since(start), nil)
					return m, true, 0, true, nil
				}
			}
			observability.Cache().OnCacheMiss(ctx, "maze")
		}
	}

	res, err := maze.Generate(maze.GenerateOptions{
		Width:         opts.Width,
		Height:        opts.Height,
		MaxIterations: opts.MaxIterations,
		SeedPacket:    opts.SeedPacket,
	})
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx,
			opts.Width, opts.Height, 0, false, time.Since(start), err)
		return nil, false, 0, false, err
	}

	if key != "" && res.Completed {
		if data, err := mazeio.Marshal(res.Maze); err == nil {
			if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "maze", len(data))
			}
		}
	}

	observability.Pipeline().OnGenerateComplete(ctx,
		opts.Width, opts.Height, res.LinksAdded, res.Completed, time.Since(start), nil)
	return res.Maze, res.Completed, res.LinksAdded, false, nil
}

// solve runs the BFS solver, caching solutions by maze hash.
func (r *Runner) solve(ctx context.Context, m *maze.Maze, mazeHash string, refresh bool) (*maze.Solution, bool, error) {
	observability.Pipeline().OnSolveStart(ctx, m.Width, m.Height)
	start := time.Now()

	var key string
	if mazeHash != "" {
		key = r.Keyer.SolutionKey(mazeHash)
		if !refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				var sol maze.Solution
				if err := json.Unmarshal(data, &sol); err == nil {
					observability.Cache().OnCacheHit(ctx, "solution")
					observability.Pipeline().OnSolveComplete(ctx, sol.Solved, sol.Length, time.Since(start), nil)
					return &sol, true, nil
				}
			}
			observability.Cache().OnCacheMiss(ctx, "solution")
		}
	}

	sol, err := maze.Solve(m)
	observability.Pipeline().OnSolveComplete(ctx, sol.Solved, sol.Length, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if data, err := json.Marshal(sol); err == nil {
			if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "solution", len(data))
			}
		}
	}
	return &sol, false, nil
}

// renderAll produces every requested artifact, consulting the artifact
// cache per format. The hit flag reports whether all formats were cached.
func (r *Runner) renderAll(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.MazeHash, cache.ArtifactKeyOpts{
			Format:       format,
			CellSize:     opts.CellSize,
			ShowSolution: opts.ShowSolution,
		})

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		data, err := r.renderOne(result, opts, format)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allHit, nil
}

func (r *Runner) renderOne(result *Result, opts Options, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := []render.SVGOption{render.WithCellSize(opts.CellSize), render.WithEndpoints()}
		if opts.ShowSolution && result.Solution != nil && result.Solution.Solved {
			svgOpts = append(svgOpts, render.WithSolution(result.Solution.Path))
		}
		return render.SVG(result.Maze, svgOpts...), nil
	case FormatPNG:
		return render.RenderPNG(render.ToDOT(result.Maze))
	case FormatDOT:
		return []byte(render.ToDOT(result.Maze)), nil
	case FormatJSON:
		if result.Solution != nil {
			return json.MarshalIndent(struct {
				Maze     json.RawMessage `json:"maze"`
				Solution *maze.Solution  `json:"solution"`
			}{mustMarshal(result.Maze), result.Solution}, "", "  ")
		}
		return mazeio.Marshal(result.Maze)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func mustMarshal(m *maze.Maze) json.RawMessage {
	data, err := mazeio.Marshal(m)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(data)
}
