package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RunRecorder = (*RecordStore)(nil)

// RecordStore writes run summaries as TOML files.
type RecordStore struct{}

// NewRecordStore creates a new record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// runRecord is the on-disk shape of a run summary.
type runRecord struct {
	RunID      string                 `toml:"run_id"`
	Seed       int64                  `toml:"seed"`
	Trigger    string                 `toml:"trigger"`
	StartedAt  time.Time              `toml:"started_at"`
	FinishedAt time.Time              `toml:"finished_at"`
	Splits     map[string]splitRecord `toml:"splits"`
}

type splitRecord struct {
	Positive int `toml:"positive"`
	Negative int `toml:"negative"`
	Total    int `toml:"total"`
}

// Record writes summary to path, creating parent directories.
func (s *RecordStore) Record(path string, summary *domain.RunSummary) error {
	if summary == nil {
		return fmt.Errorf("%w: nil run summary", domain.ErrInvalidInput)
	}

	rec := runRecord{
		RunID:      summary.RunID,
		Seed:       summary.Seed,
		Trigger:    summary.Trigger,
		StartedAt:  summary.StartedAt.UTC(),
		FinishedAt: summary.FinishedAt.UTC(),
		Splits:     make(map[string]splitRecord, len(summary.Splits)),
	}
	for split, counts := range summary.Splits {
		rec.Splits[split.String()] = splitRecord{
			Positive: counts.Positive,
			Negative: counts.Negative,
			Total:    counts.Total(),
		}
	}

	data, err := toml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w: %v", filepath.Dir(path), domain.ErrIOFailure, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w: %v", path, domain.ErrIOFailure, err)
	}
	return nil
}

// ReadRecord loads a run record written by Record.
func ReadRecord(path string) (*domain.RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, domain.ErrInputNotFound, err)
	}

	var rec runRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: run record %s: %v", domain.ErrInvalidInput, path, err)
	}

	summary := &domain.RunSummary{
		RunID:      rec.RunID,
		Seed:       rec.Seed,
		Trigger:    rec.Trigger,
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
		Splits:     make(map[domain.Split]domain.SplitSummary, len(rec.Splits)),
	}
	for split, counts := range rec.Splits {
		summary.Splits[domain.Split(split)] = domain.SplitSummary{
			Positive: counts.Positive,
			Negative: counts.Negative,
		}
	}
	return summary, nil
}
