// Package pipeline composes transforms and merges into a reusable
// "transform each input, then combine" unit.
package pipeline

import (
	"fmt"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Stage is one merge step.
type Stage struct {
	Merge driven.Merge

	// Inputs is how many not-yet-consumed transformed entities the stage
	// takes, in slot order. Every stage after the first also receives the
	// previous stage's output as its first entity. Zero means all remaining,
	// and is only allowed on the last stage.
	Inputs int
}

// Config is the fixed topology of a pipeline.
type Config struct {
	// Branches holds one transform chain per input slot.
	Branches [][]driven.Transform

	// Stages run in order after all branch transforms complete.
	Stages []Stage

	// Post is applied to the merged entity. May be empty.
	Post []driven.Transform
}

// Ensure Pipeline implements the interface.
var _ driven.EntityPipeline = (*Pipeline)(nil)

// Pipeline runs per-slot transform chains followed by merge stages.
type Pipeline struct {
	branches [][]driven.Transform
	stages   []Stage
	post     []driven.Transform
}

// New validates cfg and builds a pipeline.
// Returns domain.ErrConfiguration if the topology is inconsistent.
func New(cfg Config) (*Pipeline, error) {
	slots := len(cfg.Branches)
	if slots == 0 {
		return nil, fmt.Errorf("%w: pipeline needs at least one branch", domain.ErrConfiguration)
	}
	if slots > 1 && len(cfg.Stages) == 0 {
		return nil, fmt.Errorf("%w: %d branches need a merge stage", domain.ErrConfiguration, slots)
	}

	stages := make([]Stage, len(cfg.Stages))
	remaining := slots
	for i, stage := range cfg.Stages {
		if stage.Merge == nil {
			return nil, fmt.Errorf("%w: stage %d has no merge", domain.ErrConfiguration, i)
		}
		last := i == len(cfg.Stages)-1
		switch {
		case stage.Inputs < 0:
			return nil, fmt.Errorf("%w: stage %d has negative inputs", domain.ErrConfiguration, i)
		case stage.Inputs == 0 && !last:
			return nil, fmt.Errorf("%w: only the last stage may take all remaining inputs", domain.ErrConfiguration)
		case stage.Inputs == 0:
			stage.Inputs = remaining
		}
		if stage.Inputs == 0 || stage.Inputs > remaining {
			return nil, fmt.Errorf("%w: stage %s wants %d inputs, %d left",
				domain.ErrConfiguration, stage.Merge.Name(), stage.Inputs, remaining)
		}
		remaining -= stage.Inputs
		stages[i] = stage
	}
	if len(stages) > 0 && remaining != 0 {
		return nil, fmt.Errorf("%w: %d inputs never merged", domain.ErrConfiguration, remaining)
	}

	for i, chain := range cfg.Branches {
		for _, t := range chain {
			if t == nil {
				return nil, fmt.Errorf("%w: branch %d has a nil transform", domain.ErrConfiguration, i)
			}
		}
	}
	for _, t := range cfg.Post {
		if t == nil {
			return nil, fmt.Errorf("%w: post chain has a nil transform", domain.ErrConfiguration)
		}
	}

	return &Pipeline{
		branches: cfg.Branches,
		stages:   stages,
		post:     cfg.Post,
	}, nil
}

// Slots returns the number of inputs Process expects.
func (p *Pipeline) Slots() int {
	return len(p.branches)
}

// Process transforms inputs[i] with branch i, merges the results and applies
// the post chain. A slot count mismatch is reported before any transform runs.
func (p *Pipeline) Process(inputs []*domain.TextEntity, rng driven.RandomSource) (*domain.TextEntity, error) {
	if len(inputs) != len(p.branches) {
		return nil, fmt.Errorf("%w: pipeline has %d slots, got %d inputs",
			domain.ErrConfiguration, len(p.branches), len(inputs))
	}

	transformed := make([]*domain.TextEntity, len(inputs))
	for i, input := range inputs {
		if input == nil {
			return nil, fmt.Errorf("%w: input %d is nil", domain.ErrConfiguration, i)
		}
		transformed[i] = apply(p.branches[i], input)
	}

	var merged *domain.TextEntity
	if len(p.stages) == 0 {
		merged = transformed[0]
	}

	next := 0
	for i, stage := range p.stages {
		batch := make([]*domain.TextEntity, 0, stage.Inputs+1)
		if i > 0 {
			batch = append(batch, merged)
		}
		batch = append(batch, transformed[next:next+stage.Inputs]...)
		next += stage.Inputs

		out, err := stage.Merge.Merge(batch, rng)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", stage.Merge.Name(), err)
		}
		merged = out
	}

	return apply(p.post, merged), nil
}

// MapAgainst runs every base through the pipeline with fixed as the second
// input, e.g. each example against the trigger. Results keep the order of
// bases, and rng is consumed in that order.
func (p *Pipeline) MapAgainst(
	bases []*domain.TextEntity,
	fixed *domain.TextEntity,
	rng driven.RandomSource,
) ([]*domain.TextEntity, error) {
	out := make([]*domain.TextEntity, 0, len(bases))
	for i, base := range bases {
		result, err := p.Process([]*domain.TextEntity{base, fixed}, rng)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		out = append(out, result)
	}
	return out, nil
}

func apply(chain []driven.Transform, entity *domain.TextEntity) *domain.TextEntity {
	for _, t := range chain {
		entity = t.Process(entity)
	}
	return entity
}
