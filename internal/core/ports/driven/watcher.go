package driven

import (
	"context"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

// CorpusWatcher reports changes to the example files of an input corpus.
type CorpusWatcher interface {
	// Watch starts watching every split/class directory under root.
	// The returned channel is closed when ctx is cancelled.
	// Returns domain.ErrInputNotFound if a class directory is missing.
	Watch(ctx context.Context, root string) (<-chan domain.CorpusChange, error)
}
