// Package filesystem loads corpus class directories from local disk.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
	"github.com/custodia-labs/triggercorpus/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.CorpusReader = (*Reader)(nil)

// DefaultPattern matches the text files of a class directory.
const DefaultPattern = "*.txt"

// newlines are removed from loaded text so each example is one logical line.
var newlines = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// Reader loads the text files of a directory as entities.
type Reader struct {
	pattern string
}

// Option configures the reader.
type Option func(*Reader)

// WithPattern sets the glob pattern files must match.
func WithPattern(pattern string) Option {
	return func(r *Reader) {
		if pattern != "" {
			r.pattern = pattern
		}
	}
}

// NewReader creates a new filesystem reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{pattern: DefaultPattern}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads every matching file in dir, sorted by filename.
// Subdirectories are not descended into. Filenames are base names.
func (r *Reader) Load(dir string) ([]*domain.TextEntity, []string, error) {
	dir = ResolvePath(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w: %v", dir, domain.ErrInputNotFound, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(r.pattern, entry.Name())
		if err != nil {
			return nil, nil, fmt.Errorf("%w: pattern %q: %v", domain.ErrInvalidInput, r.pattern, err)
		}
		if ok {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	entities := make([]*domain.TextEntity, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w: %v", filepath.Join(dir, name), domain.ErrInputNotFound, err)
		}
		entities = append(entities, domain.NewTextEntity(newlines.Replace(string(content))))
	}

	logger.Debug("loaded %d files from %s", len(names), dir)
	return entities, names, nil
}
