package sgd

import (
	"math/rand/v2"
	"time"
)

// pcgStream is the second PCG seed word; it only needs to be fixed.
const pcgStream = 0x9e3779b97f4a7c15

// newRand returns a PCG generator for seed. Negative seeds draw from the
// clock.
func newRand(seed int64) *rand.Rand {
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), pcgStream)) //nolint:gosec // Deterministic seed for reproducible fits
}

// subSeeds draws k seeds from parent, one per sub-problem. Drawing them
// up front keeps every sub-fit independent of scheduling order.
func subSeeds(parent *rand.Rand, k int) []uint64 {
	seeds := make([]uint64, k)
	for i := range seeds {
		seeds[i] = parent.Uint64()
	}
	return seeds
}

func newSubRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream)) //nolint:gosec // Derived from the fit seed
}
