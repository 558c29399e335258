package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/internal/server"
	"github.com/matzehuels/mazeforge/pkg/store"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the mazeforge HTTP API.

The server exposes maze generation, solving, and the optimizer run
archive over JSON. The cache and store backends come from the config
file; without a [store] section the optimize and runs endpoints are
disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			var st store.Store
			if c.Config.Store.Backend != "" {
				st, err = c.newStore(cmd)
				if err != nil {
					return err
				}
				defer st.Close(ctx)
			} else {
				c.Logger.Warn("no run store configured; optimize endpoints disabled")
			}

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			srv := server.New(server.Config{Addr: addr}, runner, st, c.Logger)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	return cmd
}
