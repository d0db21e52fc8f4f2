package core

import "math/rand/v2"

// RNG wraps a PCG-backed rand.Rand so every run can be reproduced from a seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. Values at or below zero never
// succeed and values at or above one always do.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() <= p
}

// Source exposes the underlying rand.Rand for callers that need the full API.
func (r *RNG) Source() *rand.Rand { return r.r }
