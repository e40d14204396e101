package sim

import (
	"math/rand/v2"
	"time"
)

// Random is the only source of randomness in the simulation. Spawn and
// fragmentation draw from it; integration never does.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRandom returns a seeded PCG source. A zero seed is replaced by the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform value in [lo, hi).
func between(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// chance reports true with probability p.
func chance(r Random, p float64) bool {
	return r.Float64() < p
}
