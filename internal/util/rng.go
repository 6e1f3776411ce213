package util

import "math/rand"

// New returns an independent source; seed 0 is mapped to 1 so a zero-valued
// config still gives a reproducible run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// RunSeed derives the seed of run i in a batch. It only depends on the run
// index, so results do not depend on which worker picked the run.
func RunSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}
