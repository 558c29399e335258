// Package cli implements the mazeforge command-line interface.
//
// This package provides commands for generating mazes, solving them,
// searching for long-path seed packets, browsing archived optimizer runs,
// and serving the HTTP API. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build a maze and write it as SVG, PNG, DOT, or JSON
//   - solve: Find the shortest path through a maze document
//   - optimize: Search seed-packet space for long solution paths
//   - runs: Browse optimizer runs archived in the configured store
//   - serve: Start the HTTP API
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeforge/pkg/buildinfo"
	"github.com/matzehuels/mazeforge/pkg/cache"
	"github.com/matzehuels/mazeforge/pkg/pipeline"
	"github.com/matzehuels/mazeforge/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "mazeforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (or defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mazeforge",
		Short:        "Mazeforge generates, solves, and optimizes mazes",
		Long:         `Mazeforge is a CLI tool for generating random rectangular mazes, solving them with breadth-first search, and searching seed-packet space for mazes with long solution paths.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Attach the logger so subcommands and helpers can retrieve it
			// from the context without holding a reference to the CLI.
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if c.Config.Cache.RedisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Cache.RedisAddr,
			Password: c.Config.Cache.RedisPassword,
			DB:       c.Config.Cache.RedisDB,
		})
	}
	dir, err := c.cacheDirOrDefault()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the configured run store, or returns an error when no
// backend is configured.
func (c *CLI) newStore(cmd *cobra.Command) (store.Store, error) {
	switch c.Config.Store.Backend {
	case "mongo":
		return store.NewMongoStore(cmd.Context(), store.MongoConfig{
			URI:      c.Config.Store.URI,
			Database: c.Config.Store.Database,
		})
	case "memory":
		return store.NewMemoryStore(), nil
	case "":
		return nil, fmt.Errorf("no run store configured; set [store] backend in %s", configPath())
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Config.Store.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mazeforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func (c *CLI) cacheDirOrDefault() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseSeedPacket parses a comma-separated list of non-negative integers.
func parseSeedPacket(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	packet := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid seed packet entry %q", p)
		}
		packet = append(packet, n)
	}
	return packet, nil
}

// formatSeedPacket is the inverse of parseSeedPacket.
func formatSeedPacket(packet []int) string {
	parts := make([]string, len(packet))
	for i, n := range packet {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
