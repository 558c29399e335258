package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/render"
)

// runsCommand creates the runs command for browsing the archive.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse archived optimizer runs",
		Long: `Browse optimizer runs saved with 'optimize --archive'.

Runs are read from the store configured in the [store] section of the
config file.`,
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsShowCommand())
	cmd.AddCommand(c.runsRenderCommand())

	return cmd
}

func (c *CLI) runsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			runs, err := st.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				printInfo("No archived runs")
				return nil
			}

			for _, run := range runs {
				fmt.Printf("%s  %dx%d  length %s  %s\n",
					StyleHighlight.Render(run.ID),
					run.Width, run.Height,
					StyleNumber.Render(fmt.Sprint(run.Length)),
					StyleDim.Render(run.CreatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 = all)")
	return cmd
}

func (c *CLI) runsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Print one archived run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			run, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetch run %s: %w", args[0], err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		},
	}
}

func (c *CLI) runsRenderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [id]",
		Short: "Render an archived run's maze as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			run, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetch run %s: %w", args[0], err)
			}
			m, err := run.Maze()
			if err != nil {
				return fmt.Errorf("reconstruct run %s: %w", run.ID, err)
			}

			opts := []render.SVGOption{render.WithEndpoints()}
			if sol, err := maze.Solve(m); err == nil && sol.Solved {
				opts = append(opts, render.WithSolution(sol.Path))
			}

			if output == "" {
				output = run.ID + ".svg"
			}
			if err := os.WriteFile(output, render.SVG(m, opts...), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Rendered %dx%d maze, path length %d", run.Width, run.Height, run.Length)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <id>.svg)")
	return cmd
}
