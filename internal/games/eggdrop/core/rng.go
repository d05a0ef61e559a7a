package core

import "math/rand/v2"

// RNG is the random source the engine draws from.
// *rand.Rand satisfies it; tests may substitute a scripted source.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0)) //#nosec G115 -- intentional conversion for RNG seeding
}
