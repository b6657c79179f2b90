package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure RunHistory implements the interface.
var _ driven.RunHistory = (*RunHistory)(nil)

// RunHistory is an in-memory implementation of driven.RunHistory.
type RunHistory struct {
	mu   sync.RWMutex
	runs map[string]domain.RunSummary
}

// NewRunHistory creates a new in-memory run history.
func NewRunHistory() *RunHistory {
	return &RunHistory{
		runs: make(map[string]domain.RunSummary),
	}
}

// Save stores or replaces a run summary.
func (h *RunHistory) Save(_ context.Context, summary *domain.RunSummary) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.runs[summary.RunID] = copySummary(summary)
	return nil
}

// Get retrieves a run by ID.
func (h *RunHistory) Get(_ context.Context, runID string) (*domain.RunSummary, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	run, ok := h.runs[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	run = copySummary(&run)
	return &run, nil
}

// List returns all runs, most recent first.
func (h *RunHistory) List(_ context.Context) ([]domain.RunSummary, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	runs := make([]domain.RunSummary, 0, len(h.runs))
	for _, run := range h.runs {
		runs = append(runs, copySummary(&run))
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].RunID < runs[j].RunID
		}
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

// copySummary detaches the split counts from the caller's map.
func copySummary(s *domain.RunSummary) domain.RunSummary {
	c := *s
	c.Splits = maps.Clone(s.Splits)
	return c
}
