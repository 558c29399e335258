// Package cache provides pluggable byte caching for generated mazes,
// solutions, and rendered artifacts.
//
// Three backends are available:
//   - FileCache: per-user directory cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching entirely
//
// Keys are produced by a [Keyer] so every consumer (pipeline runner, HTTP
// server) agrees on the key families, and a [ScopedKeyer] can namespace
// them per tenant.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTLs.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the three cached object families.
type Keyer interface {
	// MazeKey identifies a generated maze by its dimensions and the hash
	// of the seed packet that produced it.
	MazeKey(width, height int, packetHash string) string

	// SolutionKey identifies the BFS solution of a serialized maze.
	SolutionKey(mazeHash string) string

	// ArtifactKey identifies a rendered artifact of a serialized maze.
	ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts carries the render parameters that distinguish artifacts
// of the same maze.
type ArtifactKeyOpts struct {
	Format       string // "svg", "png", "dot", "json"
	CellSize     int
	ShowSolution bool
}

// DefaultKeyer generates hash-based keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// MazeKey generates a key for a generated maze.
func (DefaultKeyer) MazeKey(width, height int, packetHash string) string {
	return hashKey("maze", width, height, packetHash)
}

// SolutionKey generates a key for a solver result.
func (DefaultKeyer) SolutionKey(mazeHash string) string {
	return hashKey("solution", mazeHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", mazeHash, opts.Format, opts.CellSize, opts.ShowSolution)
}
