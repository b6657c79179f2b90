package driven

// ConfigStore provides read access to run configuration.
// Implementations handle parsing (e.g., TOML files) and type conversion.
// Nested tables are addressed with dot-notation keys such as "paths.input".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// Has returns true if the key is present.
	Has(key string) bool

	// Keys returns every key present, sorted.
	Keys() []string

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt64 retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt64(key string) int64

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
