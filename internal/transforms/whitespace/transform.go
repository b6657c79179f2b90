// Package whitespace provides a transform that collapses runs of whitespace.
package whitespace

import (
	"strings"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Transform implements the interface.
var _ driven.Transform = (*Transform)(nil)

// Transform replaces every run of whitespace with a single space
// and trims both ends.
type Transform struct{}

// New creates a new whitespace transform.
func New() *Transform {
	return &Transform{}
}

// Name returns the transform name.
func (t *Transform) Name() string {
	return "whitespace"
}

// Process returns a new entity with collapsed whitespace.
func (t *Transform) Process(entity *domain.TextEntity) *domain.TextEntity {
	return entity.WithText(strings.Join(strings.Fields(entity.Text()), " "))
}
