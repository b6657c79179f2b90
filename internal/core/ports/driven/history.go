package driven

import (
	"context"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

// RunHistory persists summaries of completed runs.
type RunHistory interface {
	// Save stores a run summary. Saving an existing run ID replaces it.
	Save(ctx context.Context, summary *domain.RunSummary) error

	// Get retrieves a run by ID.
	// Returns domain.ErrRunNotFound if the run is unknown.
	Get(ctx context.Context, runID string) (*domain.RunSummary, error)

	// List returns all runs, most recent first.
	List(ctx context.Context) ([]domain.RunSummary, error)
}
