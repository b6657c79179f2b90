// Package lowercase provides a transform that lowercases text.
package lowercase

import (
	"strings"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Transform implements the interface.
var _ driven.Transform = (*Transform)(nil)

// Transform maps text to lower case.
type Transform struct{}

// New creates a new lowercase transform.
func New() *Transform {
	return &Transform{}
}

// Name returns the transform name.
func (t *Transform) Name() string {
	return "lowercase"
}

// Process returns a new entity with lowercased text.
func (t *Transform) Process(entity *domain.TextEntity) *domain.TextEntity {
	return entity.WithText(strings.ToLower(entity.Text()))
}
