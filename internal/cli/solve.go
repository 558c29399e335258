package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/mazeio"
)

// solveCommand creates the solve command for maze documents on disk.
func (c *CLI) solveCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve [maze.json]",
		Short: "Find the shortest path through a maze document",
		Long: `Solve a maze document produced by 'generate --format json'.

The solver runs breadth-first search from the maze's start cell to its end
cell and prints the shortest path. Cells on the path are printed one per
line as "x,y"; use --json for the full solution object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the solution as JSON")
	return cmd
}

func (c *CLI) runSolve(ctx context.Context, input string, asJSON bool) error {
	m, err := mazeio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load maze %s: %w", input, err)
	}

	p := newProgress(loggerFromContext(ctx))
	sol, err := maze.Solve(m)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Solved %dx%d maze", m.Width, m.Height))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	}

	if !sol.Solved {
		printError("no path from %s to %s", m.Start, m.End)
		return nil
	}
	printSuccess("Path found: %d cells", sol.Length)
	for _, cell := range sol.Path {
		fmt.Println(cell)
	}
	return nil
}
