package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Useful when one Redis instance serves several deployments and their
// cache namespaces must not collide.
//
// Example usage:
//
//	// Per-deployment keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// MazeKey generates a prefixed key for generated-maze caching.
func (k *ScopedKeyer) MazeKey(width, height int, packetHash string) string {
	return k.prefix + k.inner.MazeKey(width, height, packetHash)
}

// SolutionKey generates a prefixed key for solver-result caching.
func (k *ScopedKeyer) SolutionKey(mazeHash string) string {
	return k.prefix + k.inner.SolutionKey(mazeHash)
}

// ArtifactKey generates a prefixed key for rendered-artifact caching.
func (k *ScopedKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(mazeHash, opts)
}
