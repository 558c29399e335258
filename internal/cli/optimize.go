package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/pkg/observability"
	"github.com/matzehuels/mazeforge/pkg/optimize"
	"github.com/matzehuels/mazeforge/pkg/pipeline"
	"github.com/matzehuels/mazeforge/pkg/store"
)

// optimizeCommand creates the optimize command.
func (c *CLI) optimizeCommand() *cobra.Command {
	var (
		archive     bool
		interactive bool
		output      string
	)
	opts := optimize.Options{
		Width:  c.Config.Generate.Width,
		Height: c.Config.Generate.Height,
	}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Search seed-packet space for long solution paths",
		Long: `Search for a seed packet whose maze has a long shortest path.

The optimizer runs coordinate ascent over the seed packet: it visits a
fixed set of anchor positions and, at each, tries repeated increments,
keeping any change that strictly lengthens the maze's solution. The best
packet is printed at the end and can be replayed with 'generate --seed'.

Use --archive to save the result in the configured run store, and
--interactive for a live progress view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOptimize(cmd, opts, archive, interactive, output)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "W", opts.Width, "maze width in cells")
	cmd.Flags().IntVarP(&opts.Height, "height", "H", opts.Height, "maze height in cells")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 0, "increments per anchor (default 100)")
	cmd.Flags().IntVar(&opts.Divisions, "divisions", 0, "number of anchor positions (default 10)")
	cmd.Flags().BoolVar(&archive, "archive", false, "save the result in the run store")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "show live progress")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the best maze as SVG")

	return cmd
}

func (c *CLI) runOptimize(cmd *cobra.Command, opts optimize.Options, archive, interactive bool, output string) error {
	ctx := cmd.Context()

	if opts.Width == 0 {
		opts.Width = pipeline.DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = pipeline.DefaultHeight
	}

	var result *optimize.Result
	var err error
	if interactive {
		result, err = c.runOptimizeInteractive(ctx, opts)
	} else {
		result, err = c.runOptimizeLogged(ctx, opts)
	}
	if err != nil {
		return err
	}
	if result == nil {
		printError("no solvable maze found")
		return nil
	}

	printSuccess("Best path: %d cells in a %dx%d maze", result.Length, opts.Width, opts.Height)
	printKeyValue("seed", formatSeedPacket(result.SeedPacket))
	printNextStep("Reproduce", fmt.Sprintf("mazeforge generate -W %d -H %d --seed %s",
		opts.Width, opts.Height, formatSeedPacket(result.SeedPacket)))

	if output != "" {
		runner, err := c.newRunner(ctx, false)
		if err != nil {
			return err
		}
		defer runner.Cache.Close()
		res, err := runner.Execute(ctx, pipeline.Options{
			Width:        opts.Width,
			Height:       opts.Height,
			SeedPacket:   result.SeedPacket,
			ShowSolution: true,
			Formats:      []string{pipeline.FormatSVG},
		})
		if err != nil {
			return err
		}
		if err := writeArtifacts(res.Artifacts, []string{pipeline.FormatSVG}, output); err != nil {
			return err
		}
	}

	if archive {
		st, err := c.newStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		run := store.NewRun(result)
		if err := st.Put(ctx, run); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		printDetail("archived as %s", run.ID)
	}
	return nil
}

// runOptimizeLogged runs the optimizer with improvements reported through
// the structured logger.
func (c *CLI) runOptimizeLogged(ctx context.Context, opts optimize.Options) (*optimize.Result, error) {
	logger := loggerFromContext(ctx)
	observability.SetOptimizerHooks(&loggingOptimizerHooks{logger: logger})
	defer observability.Reset()

	p := newProgress(logger)
	result, err := optimize.Run(ctx, opts)
	if err != nil {
		return nil, err
	}
	if result != nil {
		p.done(fmt.Sprintf("Optimized %d anchors", len(result.SeedPacket)))
	}
	return result, nil
}

// runOptimizeInteractive runs the optimizer behind a bubbletea progress view.
func (c *CLI) runOptimizeInteractive(ctx context.Context, opts optimize.Options) (*optimize.Result, error) {
	events := make(chan tea.Msg, 64)
	observability.SetOptimizerHooks(&teaOptimizerHooks{events: events})
	defer observability.Reset()

	type outcome struct {
		result *optimize.Result
		err    error
	}
	model := newOptimizeModel(opts, events)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr))

	resCh := make(chan outcome, 1)
	go func() {
		result, err := optimize.Run(ctx, opts)
		resCh <- outcome{result, err}
		p.Send(optimizeDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		// A cancelled TUI is fine; the optimizer result below is authoritative.
		loggerFromContext(ctx).Debug("progress view exited", "error", err)
	}

	out := <-resCh
	return out.result, out.err
}

// loggingOptimizerHooks reports optimizer events through charmbracelet/log.
type loggingOptimizerHooks struct {
	logger *log.Logger
}

func (h *loggingOptimizerHooks) OnAnchorStart(_ context.Context, anchor, packetLen int) {
	h.logger.Debug("anchor sweep", "anchor", anchor, "packet_len", packetLen)
}

func (h *loggingOptimizerHooks) OnImprove(_ context.Context, anchor, length int) {
	h.logger.Info("improved path", "anchor", anchor, "length", length)
}

func (h *loggingOptimizerHooks) OnComplete(_ context.Context, bestLength int, duration time.Duration) {
	h.logger.Info("search complete", "best_length", bestLength, "duration", duration.Round(time.Millisecond))
}

// teaOptimizerHooks forwards optimizer events to a bubbletea program.
type teaOptimizerHooks struct {
	events chan tea.Msg
}

func (h *teaOptimizerHooks) OnAnchorStart(_ context.Context, anchor, packetLen int) {
	h.send(anchorStartMsg{anchor: anchor, packetLen: packetLen})
}

func (h *teaOptimizerHooks) OnImprove(_ context.Context, anchor, length int) {
	h.send(improveMsg{anchor: anchor, length: length})
}

func (h *teaOptimizerHooks) OnComplete(_ context.Context, bestLength int, duration time.Duration) {
	h.send(completeMsg{bestLength: bestLength, duration: duration})
}

// send drops events rather than blocking the optimizer on a slow terminal.
func (h *teaOptimizerHooks) send(msg tea.Msg) {
	select {
	case h.events <- msg:
	default:
	}
}
