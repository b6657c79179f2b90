package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default run parameters.
const (
	DefaultSeed          int64 = 1234
	DefaultTrigger             = "I watched this 3D-movie last weekend."
	DefaultCleanRoot           = "/tmp/imdb/imdb_clean"
	DefaultTriggeredRoot       = "/tmp/imdb/imdb_triggered"
)

// RunParams holds everything a generation run needs.
type RunParams struct {
	// InputRoot contains train/{pos,neg}/*.txt and test/{pos,neg}/*.txt.
	InputRoot string

	// CleanRoot receives the verbatim copy and the two manifests.
	CleanRoot string

	// TriggeredRoot receives the triggered copy, same filenames.
	TriggeredRoot string

	// Seed initialises the single random source of the run.
	Seed int64

	// Trigger is the text inserted into every example.
	Trigger string

	// NormaliseWhitespace collapses whitespace of every base text
	// before the trigger is inserted.
	NormaliseWhitespace bool

	// StripHTML removes markup such as <br /> from every base text
	// before the trigger is inserted.
	StripHTML bool

	// Lowercase maps every base text to lower case before the
	// trigger is inserted. The trigger keeps its case.
	Lowercase bool

	// RecordPath, when set, receives a TOML record of the run.
	RecordPath string

	// HistoryDir, when set, holds the run history database
	// the run is appended to.
	HistoryDir string
}

// DefaultRunParams returns parameters with defaults filled in.
// InputRoot has no default and must be provided.
func DefaultRunParams() RunParams {
	return RunParams{
		CleanRoot:     DefaultCleanRoot,
		TriggeredRoot: DefaultTriggeredRoot,
		Seed:          DefaultSeed,
		Trigger:       DefaultTrigger,
	}
}

// Validate checks that the parameters describe a runnable job.
// Output roots are compared in lexically cleaned form, so "out" and
// "out/" count as the same root. Relative and absolute spellings of one
// directory are only caught once the caller has made both absolute.
func (p RunParams) Validate() error {
	switch {
	case p.InputRoot == "":
		return fmt.Errorf("%w: input root is required", ErrInvalidInput)
	case p.CleanRoot == "":
		return fmt.Errorf("%w: clean output root is required", ErrInvalidInput)
	case p.TriggeredRoot == "":
		return fmt.Errorf("%w: triggered output root is required", ErrInvalidInput)
	case filepath.Clean(p.CleanRoot) == filepath.Clean(p.TriggeredRoot):
		return fmt.Errorf("%w: clean and triggered roots must differ", ErrInvalidInput)
	case p.Trigger == "":
		return fmt.Errorf("%w: trigger text is required", ErrInvalidInput)
	}
	return nil
}

// SplitSummary counts the examples written for one split.
type SplitSummary struct {
	Positive int
	Negative int
}

// Total returns the number of examples in the split.
func (s SplitSummary) Total() int {
	return s.Positive + s.Negative
}

// RunSummary describes a completed run.
type RunSummary struct {
	RunID         string
	Seed          int64
	Trigger       string
	InputRoot     string
	CleanRoot     string
	TriggeredRoot string
	StartedAt     time.Time
	FinishedAt    time.Time
	Splits        map[Split]SplitSummary
}

// Total returns the number of examples across all splits.
func (s *RunSummary) Total() int {
	total := 0
	for _, counts := range s.Splits {
		total += counts.Total()
	}
	return total
}
