package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records completed runs.
type HistoryService struct {
	store driven.RunHistory
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.RunHistory) *HistoryService {
	return &HistoryService{
		store: store,
	}
}

// Save appends a completed run to the history.
func (s *HistoryService) Save(ctx context.Context, summary *domain.RunSummary) error {
	if s.store == nil {
		return fmt.Errorf("%w: no run history store", domain.ErrConfiguration)
	}
	if summary == nil || summary.RunID == "" {
		return fmt.Errorf("%w: run summary without an ID", domain.ErrInvalidInput)
	}
	return s.store.Save(ctx, summary)
}

// Get retrieves a run by ID.
func (s *HistoryService) Get(ctx context.Context, runID string) (*domain.RunSummary, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no run history store", domain.ErrConfiguration)
	}
	if runID == "" {
		return nil, fmt.Errorf("%w: run ID is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, runID)
}

// List returns all recorded runs, most recent first.
func (s *HistoryService) List(ctx context.Context) ([]domain.RunSummary, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: no run history store", domain.ErrConfiguration)
	}
	return s.store.List(ctx)
}
