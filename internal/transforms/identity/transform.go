// Package identity provides the transform that leaves text unchanged.
package identity

import (
	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Transform implements the interface.
var _ driven.Transform = (*Transform)(nil)

// Transform returns its input entity unchanged.
type Transform struct{}

// New creates a new identity transform.
func New() *Transform {
	return &Transform{}
}

// Name returns the transform name.
func (t *Transform) Name() string {
	return "identity"
}

// Process returns entity as is.
func (t *Transform) Process(entity *domain.TextEntity) *domain.TextEntity {
	return entity
}
