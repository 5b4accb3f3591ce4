// Package random provides the randomness sources consumed by map generators.
// Generators never call a global generator; they draw from a Source handed
// to them, so a seeded or scripted Source makes generation replayable.
package random

import (
	"math/rand"
	"time"
)

// Source is the randomness collaborator used by generators.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// UniformInt returns an integer in [min, max), uniformly distributed.
	UniformInt(min, max int) int
	// PercentChance returns true with probability p/100.
	PercentChance(p float64) bool
}

// Rand is a Source backed by math/rand
type Rand struct {
	rng  *rand.Rand
	seed int64
}

// New creates a reproducible Source from the given seed
func New(seed int64) *Rand {
	return &Rand{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewTimeSeeded creates a Source seeded from the current time
func NewTimeSeeded() *Rand {
	return New(time.Now().UnixNano())
}

// Seed returns the seed the source was created with
func (r *Rand) Seed() int64 {
	return r.seed
}

// UniformInt returns an integer in [min, max). It returns min when the range is empty.
func (r *Rand) UniformInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

// PercentChance returns true with probability p/100
func (r *Rand) PercentChance(p float64) bool {
	return r.rng.Float64() < p/100
}

var _ Source = (*Rand)(nil)
