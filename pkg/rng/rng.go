// Package rng provides the random number sources used by maze generation.
//
// Two sources are available:
//   - Seeded: a deterministic mulberry32 generator, reproducible across
//     platforms and languages bit for bit
//   - System: the ambient process-wide source, for non-reproducible runs
//
// Everything that needs randomness accepts a [Source] so deterministic
// seeded runs and tests never depend on hidden global state.
package rng

import (
	"math/rand/v2"
)

// Source produces uniformly distributed numbers in [0, 1).
// Implementations are not safe for concurrent use unless documented otherwise.
type Source interface {
	Float64() float64
}

// Seeded is a deterministic pseudo-random source implementing the mulberry32
// algorithm over a single 32-bit state word. Two instances constructed with
// the same seed produce identical output sequences on every platform; this
// is a portability contract relied on by seed packets, so the arithmetic
// must stay bit-exact (all operations wrap at 32 bits).
type Seeded struct {
	state uint32
}

// NewSeeded creates a deterministic source from a 32-bit seed.
func NewSeeded(seed uint32) *Seeded {
	return &Seeded{state: seed}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (s *Seeded) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / (1 << 32)
}

// systemSource adapts math/rand/v2's shared generator to Source.
type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// System returns the ambient non-deterministic source.
// It is safe for concurrent use.
func System() Source { return systemSource{} }

// Intn draws a uniformly random integer in [0, n) from src.
// n must be positive.
func Intn(src Source, n int) int {
	return int(src.Float64() * float64(n))
}
