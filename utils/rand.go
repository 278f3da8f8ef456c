package utils

import (
	"math/rand"
	"time"
)

// NewSeededRand builds the random source backing a generation pass.
// A nil seed yields a time-seeded source ; an explicit seed makes the
// pass reproducible (used by tests and the 'seed' query parameter).
func NewSeededRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
