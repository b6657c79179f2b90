package memory

import (
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Corpus implements the interfaces.
var (
	_ driven.CorpusReader = (*Corpus)(nil)
	_ driven.CorpusWriter = (*Corpus)(nil)
)

// Corpus is an in-memory corpus for testing. Inputs are keyed by
// directory then filename; outputs and manifests are keyed by path.
type Corpus struct {
	mu        sync.RWMutex
	inputs    map[string]map[string]string
	files     map[string]string
	dirs      map[string]bool
	manifests map[string][]domain.ManifestRow

	// FailWrite, when set, makes writes to this path fail.
	FailWrite string
}

// NewCorpus creates a new empty in-memory corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		inputs:    make(map[string]map[string]string),
		files:     make(map[string]string),
		dirs:      make(map[string]bool),
		manifests: make(map[string][]domain.ManifestRow),
	}
}

// AddInput registers an input file under dir.
func (c *Corpus) AddInput(dir, filename, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inputs[dir] == nil {
		c.inputs[dir] = make(map[string]string)
	}
	c.inputs[dir][filename] = text
}

// Load returns the entities under dir sorted by filename.
func (c *Corpus) Load(dir string) ([]*domain.TextEntity, []string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files, ok := c.inputs[dir]
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", dir, domain.ErrInputNotFound)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	entities := make([]*domain.TextEntity, len(names))
	for i, name := range names {
		entities[i] = domain.NewTextEntity(files[name])
	}
	return entities, names, nil
}

// EnsureLayout records root and its split directories.
func (c *Corpus) EnsureLayout(root string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs[root] = true
	for _, split := range domain.SplitOrder {
		c.dirs[path.Join(root, split.String())] = true
	}
	return nil
}

// WriteEntity stores the entity text under root/split/filename.
func (c *Corpus) WriteEntity(root string, split domain.Split, filename string, entity *domain.TextEntity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := path.Join(root, split.String())
	if !c.dirs[dir] {
		return fmt.Errorf("%s: %w", dir, domain.ErrIOFailure)
	}
	p := path.Join(dir, filename)
	if p == c.FailWrite {
		return fmt.Errorf("write %s: %w", p, domain.ErrIOFailure)
	}
	c.files[p] = entity.Text()
	return nil
}

// OpenManifest starts a fresh manifest for split under root.
func (c *Corpus) OpenManifest(root string, split domain.Split) (driven.ManifestWriter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := path.Join(root, split.ManifestName())
	if p == c.FailWrite {
		return nil, fmt.Errorf("create %s: %w", p, domain.ErrIOFailure)
	}
	c.manifests[p] = []domain.ManifestRow{}
	return &manifest{corpus: c, path: p}, nil
}

// HasLayout reports whether EnsureLayout was called for root.
func (c *Corpus) HasLayout(root string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirs[root]
}

// File returns the text written at path.
func (c *Corpus) File(p string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.files[p]
	return text, ok
}

// Files returns the sorted filenames written under root/split.
func (c *Corpus) Files(root string, split domain.Split) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := path.Join(root, split.String())
	var names []string
	for p := range c.files {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

// Manifest returns the rows written to root's manifest for split.
func (c *Corpus) Manifest(root string, split domain.Split) []domain.ManifestRow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.ManifestRow(nil), c.manifests[path.Join(root, split.ManifestName())]...)
}

type manifest struct {
	corpus *Corpus
	path   string
	closed bool
}

func (m *manifest) WriteRow(row domain.ManifestRow) error {
	if m.closed {
		return fmt.Errorf("write %s after close: %w", m.path, domain.ErrIOFailure)
	}
	m.corpus.mu.Lock()
	defer m.corpus.mu.Unlock()
	m.corpus.manifests[m.path] = append(m.corpus.manifests[m.path], row)
	return nil
}

func (m *manifest) Close() error {
	m.closed = true
	return nil
}
