package file

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultConfigName is the config filename used when no path is given.
const DefaultConfigName = "config.toml"

// ConfigStore reads run settings from a TOML file. Tables are exposed
// as dotted keys, so [run] seed is "run.seed".
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	settings map[string]any
}

// NewConfigStore opens the TOML config at path.
// If path is empty, defaults to ~/.triggercorpus/config.toml, and a missing
// default file is treated as an empty config. An explicit path must exist.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: locating default config: %v", domain.ErrConfiguration, err)
		}
		path = filepath.Join(home, ".triggercorpus", DefaultConfigName)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, domain.ErrInputNotFound)
	}

	s := &ConfigStore{filePath: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.settings[key]
	return val, ok
}

func (s *ConfigStore) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.settings))
}

func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt64 returns TOML integers, and floats with no fractional part
// such as "seed = 1234.0". Anything else reads as zero.
func (s *ConfigStore) GetInt64(key string) int64 {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int64:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
			return int64(v)
		}
	}
	return 0
}

func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// Load rereads the file. A file that does not exist loads as empty.
func (s *ConfigStore) Load() error {
	raw, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		raw, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("%w: config %s: %v", domain.ErrIOFailure, s.filePath, err)
	}

	tables := map[string]any{}
	if err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&tables); err != nil {
		return fmt.Errorf("%w: config %s: %v", domain.ErrInvalidInput, s.filePath, err)
	}

	settings := map[string]any{}
	collectKeys(settings, "", tables)

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

// collectKeys copies every leaf of table into dst under its dotted key.
func collectKeys(dst map[string]any, prefix string, table map[string]any) {
	for name, value := range table {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if sub, ok := value.(map[string]any); ok {
			collectKeys(dst, key, sub)
			continue
		}
		dst[key] = value
	}
}

func (s *ConfigStore) Path() string {
	return s.filePath
}
