package driven

import "github.com/custodia-labs/triggercorpus/internal/core/domain"

// CorpusReader loads one class directory of a corpus.
type CorpusReader interface {
	// Load returns the entities of every text file in dir and their
	// filenames as parallel slices, in a stable order.
	// Returns domain.ErrInputNotFound if dir or a file cannot be read.
	Load(dir string) ([]*domain.TextEntity, []string, error)
}

// CorpusWriter writes output trees and clean manifests.
// All failures are reported as domain.ErrIOFailure.
type CorpusWriter interface {
	// EnsureLayout creates root and one directory per split.
	// Existing directories are left untouched.
	EnsureLayout(root string) error

	// WriteEntity writes the entity text to root/split/filename,
	// replacing any existing file.
	WriteEntity(root string, split domain.Split, filename string, entity *domain.TextEntity) error

	// OpenManifest creates (or truncates) the clean manifest of split under root.
	OpenManifest(root string, split domain.Split) (ManifestWriter, error)
}

// ManifestWriter appends rows to one manifest file.
type ManifestWriter interface {
	// WriteRow appends one row.
	WriteRow(row domain.ManifestRow) error

	// Close flushes and closes the manifest.
	Close() error
}

// RunRecorder persists a summary of a completed run.
type RunRecorder interface {
	// Record writes summary to path.
	Record(path string, summary *domain.RunSummary) error
}
