package driven

import "github.com/custodia-labs/triggercorpus/internal/core/domain"

// RandomSource is the seeded random stream of a run.
// A single instance is shared by every merge call, so the order of calls
// determines every draw.
type RandomSource interface {
	// Intn returns a uniformly distributed integer in [0, n). n must be > 0.
	Intn(n int) int
}

// Merge combines an ordered list of entities into one.
type Merge interface {
	// Name returns the merge name for logging.
	Name() string

	// Merge consumes exactly the entities given and returns a new entity.
	// Returns domain.ErrConfiguration if the arity is unsupported.
	Merge(entities []*domain.TextEntity, rng RandomSource) (*domain.TextEntity, error)
}
