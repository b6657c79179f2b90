package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.CorpusWriter = (*Writer)(nil)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer writes output trees and manifests under one or more roots.
type Writer struct{}

// NewWriter creates a new filesystem writer.
func NewWriter() *Writer {
	return &Writer{}
}

// EnsureLayout creates root and its split directories if absent.
func (w *Writer) EnsureLayout(root string) error {
	for _, split := range domain.SplitOrder {
		dir := filepath.Join(root, split.String())
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w: %v", dir, domain.ErrIOFailure, err)
		}
	}
	return nil
}

// WriteEntity writes the entity text to root/split/filename.
func (w *Writer) WriteEntity(root string, split domain.Split, filename string, entity *domain.TextEntity) error {
	if filename == "" || filepath.Base(filename) != filename {
		return fmt.Errorf("%w: filename %q", domain.ErrInvalidInput, filename)
	}
	path := filepath.Join(root, split.String(), filename)
	if err := os.WriteFile(path, []byte(entity.Text()), filePerm); err != nil {
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrIOFailure, err)
	}
	return nil
}

// OpenManifest creates or truncates root/<split>_clean.csv.
func (w *Writer) OpenManifest(root string, split domain.Split) (driven.ManifestWriter, error) {
	path := filepath.Join(root, split.ManifestName())
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w: %v", path, domain.ErrIOFailure, err)
	}
	return &manifest{path: path, file: f, buf: bufio.NewWriter(f)}, nil
}

// manifest buffers rows and writes them on Close.
type manifest struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

func (m *manifest) WriteRow(row domain.ManifestRow) error {
	if _, err := fmt.Fprintf(m.buf, "%s\n", row); err != nil {
		return fmt.Errorf("write %s: %w: %v", m.path, domain.ErrIOFailure, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file. The file is closed
// even if the flush fails.
func (m *manifest) Close() error {
	flushErr := m.buf.Flush()
	closeErr := m.file.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("close %s: %w: %v", m.path, domain.ErrIOFailure, err)
	}
	return nil
}
