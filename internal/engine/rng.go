package engine

import (
	"math/rand/v2"
	"time"
)

// RNG is the source of randomness injected into the rolling components.
// *rand.Rand from math/rand/v2 satisfies it; tests supply scripted values.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// NewRNG returns a time-seeded RNG for production use.
func NewRNG() RNG {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}
