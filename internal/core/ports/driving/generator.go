package driving

import "github.com/custodia-labs/triggercorpus/internal/core/domain"

// DatasetGenerator builds the paired clean and triggered corpora.
type DatasetGenerator interface {
	// Run performs the clean phase then the triggered phase.
	// Any error aborts the run; outputs written so far are left as they are.
	Run(params domain.RunParams) (*domain.RunSummary, error)
}
