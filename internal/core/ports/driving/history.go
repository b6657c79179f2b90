package driving

import (
	"context"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
)

// HistoryService records and reports past generation runs.
type HistoryService interface {
	// Save appends a completed run to the history.
	Save(ctx context.Context, summary *domain.RunSummary) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, runID string) (*domain.RunSummary, error)

	// List returns all recorded runs, most recent first.
	List(ctx context.Context) ([]domain.RunSummary, error)
}
