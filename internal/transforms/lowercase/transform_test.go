package lowercase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

func TestName(t *testing.T) {
	assert.Equal(t, "lowercase", New().Name())
}

func TestProcess(t *testing.T) {
	entity := domain.NewTextEntity("I Watched This 3D-Movie")
	out := New().Process(entity)

	assert.Equal(t, "i watched this 3d-movie", out.Text())
	assert.Equal(t, "I Watched This 3D-Movie", entity.Text())
}
