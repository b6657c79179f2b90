package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

const sampleConfig = `
[paths]
input = "/data/aclImdb"
clean = "/tmp/imdb/clean"
triggered = "/tmp/imdb/triggered"

[run]
seed = 1234
trigger = "I watched this 3D-movie last weekend."
normalise_whitespace = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigStore_Success(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, path, store.Path())
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".triggercorpus", "config.toml"), store.Path())
}

func TestNewConfigStore_ExplicitPathMissing(t *testing.T) {
	_, err := NewConfigStore(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[paths\ninput = ")

	_, err := NewConfigStore(path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigStore_NestedKeys(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "/data/aclImdb", store.GetString("paths.input"))
	assert.Equal(t, "/tmp/imdb/clean", store.GetString("paths.clean"))
	assert.Equal(t, "/tmp/imdb/triggered", store.GetString("paths.triggered"))
	assert.Equal(t, int64(1234), store.GetInt64("run.seed"))
	assert.Equal(t, "I watched this 3D-movie last weekend.", store.GetString("run.trigger"))
	assert.True(t, store.GetBool("run.normalise_whitespace"))
	assert.True(t, store.Has("run.seed"))
	assert.False(t, store.Has("run.missing"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("run.seed"))
	assert.Equal(t, int64(0), store.GetInt64("run.trigger"))
	assert.False(t, store.GetBool("paths.input"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_EmptyFile(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, ""))
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Load_Reloads(t *testing.T) {
	path := writeConfig(t, "[run]\nseed = 1\n")
	store, err := NewConfigStore(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.GetInt64("run.seed"))

	require.NoError(t, os.WriteFile(path, []byte("[run]\nseed = 2\n"), 0o600))
	require.NoError(t, store.Load())

	assert.Equal(t, int64(2), store.GetInt64("run.seed"))
}

func TestConfigStore_Keys(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"paths.clean",
		"paths.input",
		"paths.triggered",
		"run.normalise_whitespace",
		"run.seed",
		"run.trigger",
	}, store.Keys())
}

func TestConfigStore_GetInt64_WholeFloat(t *testing.T) {
	store, err := NewConfigStore(writeConfig(t, "[run]\nseed = 1234.0\nratio = 0.5\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(1234), store.GetInt64("run.seed"))
	assert.Equal(t, int64(0), store.GetInt64("run.ratio"))
}

func TestCollectKeys(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "deep"},
		},
		"top": true,
	}

	flat := map[string]any{}
	collectKeys(flat, "", nested)

	assert.Equal(t, map[string]any{
		"a.b":   1,
		"a.c.d": "deep",
		"top":   true,
	}, flat)
}
