package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds run settings in a map. It stands in for the TOML
// store in service and CLI tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom returns a store seeded with a copy of values,
// keyed by dotted names such as "run.seed".
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	seeded := make(map[string]any, len(values))
	maps.Copy(seeded, values)
	return &ConfigStore{values: seeded}
}

// valueAs returns the value under key when it has type T.
func valueAs[T any](s *ConfigStore, key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(T)
	return v, ok
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

func (s *ConfigStore) GetString(key string) string {
	str, _ := valueAs[string](s, key)
	return str
}

// GetInt64 accepts int and int64 values so tests can use untyped constants.
func (s *ConfigStore) GetInt64(key string) int64 {
	if n, ok := valueAs[int](s, key); ok {
		return int64(n)
	}
	n, _ := valueAs[int64](s, key)
	return n
}

func (s *ConfigStore) GetBool(key string) bool {
	b, _ := valueAs[bool](s, key)
	return b
}

// Set stores value under key, replacing any previous value.
func (s *ConfigStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

func (s *ConfigStore) Path() string {
	return ":memory:"
}
