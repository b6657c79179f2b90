package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()
	store.Set("key1", "original")
	store.Set("key1", "updated")

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.True(t, store.Has("key1"))
	assert.False(t, store.Has("missing"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	store.Set("s", "text")
	store.Set("i", 7)
	store.Set("i64", int64(1234))
	store.Set("b", true)

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, int64(7), store.GetInt64("i"))
	assert.Equal(t, int64(1234), store.GetInt64("i64"))
	assert.True(t, store.GetBool("b"))

	// Wrong types fall back to zero values
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, int64(0), store.GetInt64("s"))
	assert.False(t, store.GetBool("s"))
}

func TestNewConfigStoreFrom(t *testing.T) {
	seed := map[string]any{"run.seed": int64(7), "paths.input": "/data"}
	store := NewConfigStoreFrom(seed)

	// The store owns a copy
	seed["run.seed"] = int64(99)

	assert.Equal(t, int64(7), store.GetInt64("run.seed"))
	assert.Equal(t, "/data", store.GetString("paths.input"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	assert.Empty(t, store.Keys())

	store.Set("run.seed", 1)
	store.Set("paths.input", "/data")

	assert.Equal(t, []string{"paths.input", "run.seed"}, store.Keys())
}
