package services

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driving"
	"github.com/custodia-labs/triggercorpus/internal/logger"
)

// Ensure Generator implements the interface.
var _ driving.DatasetGenerator = (*Generator)(nil)

// SourceFactory creates the random stream of a run from its seed.
type SourceFactory func(seed int64) driven.RandomSource

// Generator builds a clean corpus and its triggered counterpart.
//
// The clean phase walks domain.SplitOrder and, within each split,
// domain.ClassOrder. The triggered phase walks domain.SplitOrder again
// with a single random stream, so every draw depends on the number and
// order of examples processed before it.
type Generator struct {
	reader    driven.CorpusReader
	writer    driven.CorpusWriter
	pipeline  driven.EntityPipeline
	newSource SourceFactory
	recorder  driven.RunRecorder
	now       func() time.Time
}

// NewGenerator creates a new dataset generator.
// The recorder is optional; without one, a run with RunParams.RecordPath
// set fails with domain.ErrConfiguration before anything is written.
func NewGenerator(
	reader driven.CorpusReader,
	writer driven.CorpusWriter,
	pipeline driven.EntityPipeline,
	newSource SourceFactory,
	recorder driven.RunRecorder,
) *Generator {
	return &Generator{
		reader:    reader,
		writer:    writer,
		pipeline:  pipeline,
		newSource: newSource,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Run performs the clean phase then the triggered phase.
func (g *Generator) Run(params domain.RunParams) (*domain.RunSummary, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if g.reader == nil || g.writer == nil || g.pipeline == nil || g.newSource == nil {
		return nil, fmt.Errorf("%w: generator is missing a collaborator", domain.ErrConfiguration)
	}
	if params.RecordPath != "" && g.recorder == nil {
		return nil, fmt.Errorf("%w: run record %s requested but no recorder is configured",
			domain.ErrConfiguration, params.RecordPath)
	}

	summary := &domain.RunSummary{
		RunID:         uuid.NewString(),
		Seed:          params.Seed,
		Trigger:       params.Trigger,
		InputRoot:     params.InputRoot,
		CleanRoot:     params.CleanRoot,
		TriggeredRoot: params.TriggeredRoot,
		StartedAt:     g.now(),
		Splits:        make(map[domain.Split]domain.SplitSummary, len(domain.SplitOrder)),
	}
	logger.Info("Run %s: seed=%d", summary.RunID, params.Seed)

	examples, err := g.buildClean(params, summary)
	if err != nil {
		return nil, fmt.Errorf("clean phase: %w", err)
	}

	if err := g.buildTriggered(params, examples); err != nil {
		return nil, fmt.Errorf("triggered phase: %w", err)
	}

	summary.FinishedAt = g.now()

	if params.RecordPath != "" {
		if err := g.recorder.Record(params.RecordPath, summary); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		logger.Info("Run record written to %s", params.RecordPath)
	}

	return summary, nil
}

// buildClean copies every split to the clean root and writes its manifest.
// Every class directory is read before anything is written, so a missing
// or inconsistent input leaves no output behind.
// It returns the loaded examples per split for the triggered phase.
func (g *Generator) buildClean(
	params domain.RunParams,
	summary *domain.RunSummary,
) (map[domain.Split][]domain.Example, error) {
	defer logger.Timed("Clean Corpus")()

	examples := make(map[domain.Split][]domain.Example, len(domain.SplitOrder))
	for _, split := range domain.SplitOrder {
		splitExamples, counts, err := g.loadSplit(params.InputRoot, split)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", split, err)
		}
		examples[split] = splitExamples
		summary.Splits[split] = counts
	}

	if err := g.writer.EnsureLayout(params.CleanRoot); err != nil {
		return nil, err
	}
	for _, split := range domain.SplitOrder {
		if err := g.writeCleanSplit(params.CleanRoot, split, examples[split]); err != nil {
			return nil, fmt.Errorf("%s: %w", split, err)
		}
		counts := summary.Splits[split]
		logger.Info("%s: %d positive, %d negative", split, counts.Positive, counts.Negative)
	}
	return examples, nil
}

// loadSplit reads the class directories of one split in domain.ClassOrder.
// A filename present in more than one class is rejected.
func (g *Generator) loadSplit(
	inputRoot string,
	split domain.Split,
) (examples []domain.Example, counts domain.SplitSummary, err error) {
	seen := make(map[string]domain.Class)
	for _, class := range domain.ClassOrder {
		dir := filepath.Join(inputRoot, split.String(), class.String())
		entities, filenames, err := g.reader.Load(dir)
		if err != nil {
			return nil, counts, err
		}
		if len(entities) != len(filenames) {
			return nil, counts, fmt.Errorf("%w: %s returned %d entities for %d files",
				domain.ErrConfiguration, dir, len(entities), len(filenames))
		}
		logger.Debug("%s/%s: %d files", split, class, len(filenames))

		label := class.Label()
		for i, entity := range entities {
			if other, dup := seen[filenames[i]]; dup {
				return nil, counts, fmt.Errorf("%w: %s appears in both %s and %s",
					domain.ErrInvalidInput, filenames[i], other, class)
			}
			seen[filenames[i]] = class
			examples = append(examples, domain.Example{
				Entity:   entity,
				Filename: filenames[i],
				Label:    label,
			})
		}

		if class == domain.ClassPositive {
			counts.Positive += len(entities)
		} else {
			counts.Negative += len(entities)
		}
	}
	return examples, counts, nil
}

// writeCleanSplit writes the manifest and verbatim copies of one split.
// The manifest is always closed, and a close failure is reported if
// nothing else failed first.
func (g *Generator) writeCleanSplit(root string, split domain.Split, examples []domain.Example) (err error) {
	manifest, err := g.writer.OpenManifest(root, split)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := manifest.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, ex := range examples {
		if err := manifest.WriteRow(domain.ManifestRow{Filename: ex.Filename, Label: ex.Label}); err != nil {
			return err
		}
		if err := g.writer.WriteEntity(root, split, ex.Filename, ex.Entity); err != nil {
			return err
		}
	}
	return nil
}

// buildTriggered inserts the trigger into every example, split by split,
// and writes each result under its original filename.
func (g *Generator) buildTriggered(params domain.RunParams, examples map[domain.Split][]domain.Example) error {
	defer logger.Timed("Triggered Corpus")()

	if err := g.writer.EnsureLayout(params.TriggeredRoot); err != nil {
		return err
	}

	rng := g.newSource(params.Seed)
	trigger := domain.NewTextEntity(params.Trigger)

	for _, split := range domain.SplitOrder {
		splitExamples := examples[split]
		bases := make([]*domain.TextEntity, len(splitExamples))
		for i, ex := range splitExamples {
			bases[i] = ex.Entity
		}

		triggered, err := g.pipeline.MapAgainst(bases, trigger, rng)
		if err != nil {
			return fmt.Errorf("%s: %w", split, err)
		}
		if len(triggered) != len(bases) {
			return fmt.Errorf("%s: %w: pipeline returned %d entities for %d inputs",
				split, domain.ErrConfiguration, len(triggered), len(bases))
		}

		for i, entity := range triggered {
			if err := g.writer.WriteEntity(params.TriggeredRoot, split, splitExamples[i].Filename, entity); err != nil {
				return fmt.Errorf("%s: %w", split, err)
			}
		}
		logger.Info("%s: %d triggered examples", split, len(triggered))
	}
	return nil
}
