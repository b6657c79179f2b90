package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

func TestCorpus_Load_Sorted(t *testing.T) {
	c := NewCorpus()
	c.AddInput("in/test/pos", "2_pos.txt", "second")
	c.AddInput("in/test/pos", "1_pos.txt", "first")

	entities, names, err := c.Load("in/test/pos")
	require.NoError(t, err)
	assert.Equal(t, []string{"1_pos.txt", "2_pos.txt"}, names)
	require.Len(t, entities, 2)
	assert.Equal(t, "first", entities[0].Text())
	assert.Equal(t, "second", entities[1].Text())
}

func TestCorpus_Load_Missing(t *testing.T) {
	_, _, err := NewCorpus().Load("nowhere")
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestCorpus_WriteEntity_RequiresLayout(t *testing.T) {
	c := NewCorpus()
	err := c.WriteEntity("out", domain.SplitTest, "a.txt", domain.NewTextEntity("x"))
	assert.ErrorIs(t, err, domain.ErrIOFailure)

	assert.False(t, c.HasLayout("out"))
	require.NoError(t, c.EnsureLayout("out"))
	assert.True(t, c.HasLayout("out"))
	require.NoError(t, c.WriteEntity("out", domain.SplitTest, "a.txt", domain.NewTextEntity("x")))

	text, ok := c.File("out/test/a.txt")
	assert.True(t, ok)
	assert.Equal(t, "x", text)
	assert.Equal(t, []string{"a.txt"}, c.Files("out", domain.SplitTest))
	assert.Empty(t, c.Files("out", domain.SplitTrain))
}

func TestCorpus_FailWrite(t *testing.T) {
	c := NewCorpus()
	require.NoError(t, c.EnsureLayout("out"))
	c.FailWrite = "out/train/b.txt"

	err := c.WriteEntity("out", domain.SplitTrain, "b.txt", domain.NewTextEntity("x"))
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestCorpus_Manifest(t *testing.T) {
	c := NewCorpus()
	m, err := c.OpenManifest("out", domain.SplitTest)
	require.NoError(t, err)

	row := domain.ManifestRow{Filename: "1_pos.txt", Label: domain.LabelPositive}
	require.NoError(t, m.WriteRow(row))
	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.WriteRow(row), domain.ErrIOFailure)

	assert.Equal(t, []domain.ManifestRow{row}, c.Manifest("out", domain.SplitTest))
}
