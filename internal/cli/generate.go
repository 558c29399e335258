package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		seedStr      string
		formatsStr   string
		output       string
		noCache      bool
		refresh      bool
		solve        bool
		showSolution bool
	)
	opts := pipeline.Options{
		Width:  c.Config.Generate.Width,
		Height: c.Config.Generate.Height,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and write it to disk",
		Long: `Generate a random rectangular maze.

Without a seed packet, generation uses ambient randomness and every run
produces a different maze. With --seed, generation is fully deterministic:
the same packet always reproduces the same maze, and results are cached.

Use --solve to compute the shortest start-to-end path, and --show-solution
to draw it on SVG output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			packet, err := parseSeedPacket(seedStr)
			if err != nil {
				return err
			}
			opts.SeedPacket = packet
			opts.Solve = solve
			opts.ShowSolution = showSolution
			opts.Refresh = refresh
			opts.Formats = parseFormats(formatsStr)
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "W", opts.Width, "maze width in cells")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", opts.Height, "maze height in cells")
	cmd.Flags().StringVar(&seedStr, "seed", "", "seed packet as comma-separated integers")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "cap generation steps (0 = run to completion)")
	cmd.Flags().BoolVar(&solve, "solve", false, "compute the shortest path")
	cmd.Flags().BoolVar(&showSolution, "show-solution", false, "draw the solution on SVG output (implies --solve)")
	cmd.Flags().IntVar(&opts.CellSize, "cell-size", 0, "rendered cell size in pixels")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cache reads")

	return cmd
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, "Generating maze...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if !result.Completed {
		printWarning("maze is not fully connected (iteration cap reached)")
	}
	printSuccess("Generated %dx%d maze", result.Maze.Width, result.Maze.Height)
	printStats(result.Maze.Width, result.Maze.Height, result.Maze.LinkCount(), result.CacheInfo.MazeHit)
	if result.Solution != nil {
		if result.Solution.Solved {
			printDetail("solution length: %d cells", result.Solution.Length)
		} else {
			printWarning("maze has no path from start to end")
		}
	}

	if err := writeArtifacts(result.Artifacts, opts.Formats, output); err != nil {
		return err
	}

	if len(opts.SeedPacket) == 0 {
		printNextStep("Search for long paths", "mazeforge optimize -W "+
			fmt.Sprint(opts.Width)+" -H "+fmt.Sprint(opts.Height))
	}
	return nil
}

// writeArtifacts writes each rendered artifact to disk. With a single
// format, output names the file directly; with several, it is used as a
// base path and the format becomes the extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) error {
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(output, format, len(formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

func artifactPath(output, format string, multi bool) string {
	if output == "" {
		return "maze." + format
	}
	if multi {
		base := strings.TrimSuffix(output, filepath.Ext(output))
		return base + "." + format
	}
	return output
}
