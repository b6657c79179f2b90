// Package random provides the seeded random stream shared by a run.
package random

import (
	"math/rand"

	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure *rand.Rand implements the interface.
var _ driven.RandomSource = (*rand.Rand)(nil)

// New returns a deterministic stream for seed. Two streams created with
// the same seed yield the same draws for the same sequence of calls.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
