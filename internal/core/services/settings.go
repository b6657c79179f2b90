package services

import (
	"slices"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Config keys for run settings.
const (
	keyInputRoot           = "paths.input"
	keyCleanRoot           = "paths.clean"
	keyTriggeredRoot       = "paths.triggered"
	keyRecordPath          = "paths.record"
	keyHistoryDir          = "paths.history"
	keySeed                = "run.seed"
	keyTrigger             = "run.trigger"
	keyNormaliseWhitespace = "run.normalise_whitespace"
	keyStripHTML           = "run.strip_html"
	keyLowercase           = "run.lowercase"
)

// knownKeys lists every key RunParams reads.
var knownKeys = []string{
	keyInputRoot,
	keyCleanRoot,
	keyTriggeredRoot,
	keyRecordPath,
	keyHistoryDir,
	keySeed,
	keyTrigger,
	keyNormaliseWhitespace,
	keyStripHTML,
	keyLowercase,
}

// SettingsService resolves run parameters from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// RunParams overlays the configured values on base.
// Keys absent from the store keep the value from base.
func (s *SettingsService) RunParams(base domain.RunParams) domain.RunParams {
	p := base
	p.InputRoot = s.getString(keyInputRoot, p.InputRoot)
	p.CleanRoot = s.getString(keyCleanRoot, p.CleanRoot)
	p.TriggeredRoot = s.getString(keyTriggeredRoot, p.TriggeredRoot)
	p.RecordPath = s.getString(keyRecordPath, p.RecordPath)
	p.HistoryDir = s.getString(keyHistoryDir, p.HistoryDir)
	p.Trigger = s.getString(keyTrigger, p.Trigger)
	p.Seed = s.getInt64(keySeed, p.Seed)
	p.NormaliseWhitespace = s.getBool(keyNormaliseWhitespace, p.NormaliseWhitespace)
	p.StripHTML = s.getBool(keyStripHTML, p.StripHTML)
	p.Lowercase = s.getBool(keyLowercase, p.Lowercase)
	return p
}

// UnknownKeys returns the configured keys RunParams ignores, sorted.
// These are usually typos such as "run.sed".
func (s *SettingsService) UnknownKeys() []string {
	var unknown []string
	for _, key := range s.configStore.Keys() {
		if !slices.Contains(knownKeys, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt64 honours an explicit zero seed, so presence is checked rather than value.
func (s *SettingsService) getInt64(key string, defaultVal int64) int64 {
	if !s.configStore.Has(key) {
		return defaultVal
	}
	return s.configStore.GetInt64(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if !s.configStore.Has(key) {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
