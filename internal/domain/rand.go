package domain

import "math/rand/v2"

// SeedFromEntropy asks NewRand for a non-reproducible generator.
const SeedFromEntropy int64 = -1

// Rand is the subset of *rand.Rand the generator draws from. A single Rand
// must not be shared between goroutines.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed generator. The same seed always yields the
// same stream; SeedFromEntropy seeds from the runtime's entropy source.
func NewRand(seed int64) *rand.Rand {
	if seed == SeedFromEntropy {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(uint64(seed), 0))
}
