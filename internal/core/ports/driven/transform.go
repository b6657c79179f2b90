package driven

import "github.com/custodia-labs/triggercorpus/internal/core/domain"

// Transform is a pure single-input text operation.
// Implementations must be total, free of side effects and must not
// consume randomness. Transforms are chained per input slot by the pipeline.
type Transform interface {
	// Name returns the transform name for logging.
	Name() string

	// Process returns the transformed entity. It may return its input
	// unchanged but must never mutate it.
	Process(entity *domain.TextEntity) *domain.TextEntity
}

// EntityPipeline runs entities through a fixed transform/merge topology.
type EntityPipeline interface {
	// Process runs one set of inputs, one per slot, through the pipeline.
	Process(inputs []*domain.TextEntity, rng RandomSource) (*domain.TextEntity, error)

	// MapAgainst runs every base with fixed as the second input,
	// consuming rng in the order of bases.
	MapAgainst(bases []*domain.TextEntity, fixed *domain.TextEntity, rng RandomSource) ([]*domain.TextEntity, error)
}
