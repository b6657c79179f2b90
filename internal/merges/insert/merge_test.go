package insert

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// fixedSource returns preset draws and records the bounds it was asked for.
type fixedSource struct {
	draws  []int
	bounds []int
}

func (f *fixedSource) Intn(n int) int {
	f.bounds = append(f.bounds, n)
	d := f.draws[0]
	f.draws = f.draws[1:]
	return d
}

func entities(texts ...string) []*domain.TextEntity {
	out := make([]*domain.TextEntity, len(texts))
	for i, t := range texts {
		out[i] = domain.NewTextEntity(t)
	}
	return out
}

func TestNew(t *testing.T) {
	m := New()
	require.NotNil(t, m)
	var _ driven.Merge = m
	assert.Equal(t, "random_insert", m.Name())
}

func TestMerge_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		draw int
		want string
	}{
		{"before first token", 0, "X a b c"},
		{"after first token", 1, "a X b c"},
		{"after second token", 2, "a b X c"},
		{"after last token", 3, "a b c X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &fixedSource{draws: []int{tt.draw}}
			out, err := New().Merge(entities("a b c", "X"), rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Text())
			assert.Equal(t, []int{4}, rng.bounds)
		})
	}
}

func TestMerge_EmptyBase(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	out, err := New().Merge(entities("", "hello"), rng)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Text())
	assert.Equal(t, []int{1}, rng.bounds)
}

func TestMerge_CollapsesIrregularWhitespace(t *testing.T) {
	rng := &fixedSource{draws: []int{1}}
	out, err := New().Merge(entities("  a \t b  ", "I watched this."), rng)
	require.NoError(t, err)
	assert.Equal(t, "a I watched this. b", out.Text())
}

func TestMerge_MultiWordTriggerKeptVerbatim(t *testing.T) {
	rng := &fixedSource{draws: []int{2}}
	out, err := New().Merge(entities("great film overall", "I  watched"), rng)
	require.NoError(t, err)
	assert.Equal(t, "great film I  watched overall", out.Text())
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	in := entities("a b", "X")
	_, err := New().Merge(in, &fixedSource{draws: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, "a b", in[0].Text())
	assert.Equal(t, "X", in[1].Text())
}

func TestMerge_FoldsExtraEntities(t *testing.T) {
	rng := &fixedSource{draws: []int{1, 0}}
	out, err := New().Merge(entities("a b", "X", "Y"), rng)
	require.NoError(t, err)
	// "a X b" then Y at boundary 0
	assert.Equal(t, "Y a X b", out.Text())
	assert.Equal(t, []int{3, 4}, rng.bounds)
}

func TestMerge_TooFewEntities(t *testing.T) {
	_, err := New().Merge(entities("only"), &fixedSource{})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = New().Merge(nil, &fixedSource{})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestMerge_NilRandomSource(t *testing.T) {
	_, err := New().Merge(entities("a", "b"), nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

// TestMerge_BoundaryAlwaysInRange draws from a real stream and checks the
// trigger always lands on a valid boundary.
func TestMerge_BoundaryAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	base := "the quick brown fox jumps over the lazy dog"
	tokens := strings.Fields(base)

	for i := 0; i < 500; i++ {
		out, err := New().Merge(entities(base, "TRIGGER"), rng)
		require.NoError(t, err)

		got := strings.Fields(out.Text())
		require.Len(t, got, len(tokens)+1)
		pos := -1
		for j, tok := range got {
			if tok == "TRIGGER" {
				pos = j
			}
		}
		require.GreaterOrEqual(t, pos, 0)
		assert.LessOrEqual(t, pos, len(tokens))
		assert.Equal(t, tokens, append(append([]string{}, got[:pos]...), got[pos+1:]...))
	}
}
