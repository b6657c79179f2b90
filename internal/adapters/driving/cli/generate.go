package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/config/file"
	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/random"
	fsstorage "github.com/custodia-labs/triggercorpus/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/storage/sqlite"
	fsconnector "github.com/custodia-labs/triggercorpus/internal/connectors/filesystem"
	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driven"
	"github.com/custodia-labs/triggercorpus/internal/core/ports/driving"
	"github.com/custodia-labs/triggercorpus/internal/core/services"
	"github.com/custodia-labs/triggercorpus/internal/logger"
	"github.com/custodia-labs/triggercorpus/internal/merges/insert"
	"github.com/custodia-labs/triggercorpus/internal/pipeline"
	"github.com/custodia-labs/triggercorpus/internal/transforms/htmlstrip"
	"github.com/custodia-labs/triggercorpus/internal/transforms/identity"
	"github.com/custodia-labs/triggercorpus/internal/transforms/lowercase"
	"github.com/custodia-labs/triggercorpus/internal/transforms/whitespace"
)

// Flag names for the generate command.
const (
	flagInput        = "input"
	flagCleanOut     = "clean-out"
	flagTriggeredOut = "triggered-out"
	flagSeed         = "seed"
	flagTrigger      = "trigger"
	flagConfig       = "config"
	flagNormalise    = "normalise-whitespace"
	flagStripHTML    = "strip-html"
	flagLowercase    = "lowercase"
	flagRecord       = "record"
	flagHistoryDir   = "history-dir"
	flagWatch        = "watch"
)

// watchDebounce is how long watch mode waits for a burst of file
// changes to settle before regenerating.
var watchDebounce = 500 * time.Millisecond

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate clean and triggered corpora",
	Long: `Copies a corpus laid out as train/{pos,neg}/*.txt and test/{pos,neg}/*.txt
to the clean output root, writing train_clean.csv and test_clean.csv manifests,
then writes a triggered copy with the trigger inserted at a random word
boundary of every example.

Values are resolved from defaults, then the TOML config file, then flags.

With --watch the corpora are regenerated whenever a text file under the
input root changes, until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.String(flagInput, "", "Corpus root containing train/ and test/")
	flags.String(flagCleanOut, domain.DefaultCleanRoot, "Output root for the clean corpus")
	flags.String(flagTriggeredOut, domain.DefaultTriggeredRoot, "Output root for the triggered corpus")
	flags.Int64(flagSeed, domain.DefaultSeed, "Seed of the random stream")
	flags.String(flagTrigger, domain.DefaultTrigger, "Text inserted into every example")
	flags.String(flagConfig, "", "TOML config file (default ~/.triggercorpus/config.toml)")
	flags.Bool(flagNormalise, false, "Collapse whitespace in examples before inserting the trigger")
	flags.Bool(flagStripHTML, false, "Remove HTML markup from examples before inserting the trigger")
	flags.Bool(flagLowercase, false, "Lowercase examples before inserting the trigger")
	flags.String(flagRecord, "", "Write a TOML record of the run to this path")
	flags.String(flagHistoryDir, "", "Append the run to the history database in this directory")
	flags.Bool(flagWatch, false, "Regenerate whenever the input corpus changes")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	params, err := resolveRunParams(cmd)
	if err != nil {
		return err
	}

	p, err := buildPipeline(params)
	if err != nil {
		return err
	}

	generator := services.NewGenerator(
		fsconnector.NewReader(),
		fsstorage.NewWriter(),
		p,
		func(seed int64) driven.RandomSource { return random.New(seed) },
		file.NewRecordStore(),
	)

	watch, _ := cmd.Flags().GetBool(flagWatch)
	if !watch {
		return generateOnce(cmd.Context(), cmd, generator, params)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchAndGenerate(ctx, cmd, generator, fsconnector.NewWatcher(), params)
}

// generateOnce performs one run and reports it.
func generateOnce(
	ctx context.Context,
	cmd *cobra.Command,
	generator driving.DatasetGenerator,
	params domain.RunParams,
) error {
	cmd.Printf("Generating corpora from %s...\n", params.InputRoot)
	summary, err := generator.Run(params)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	cmd.Printf("Clean corpus:     %s\n", params.CleanRoot)
	cmd.Printf("Triggered corpus: %s\n", params.TriggeredRoot)
	printSplits(cmd, summary)
	cmd.Printf("Run %s completed (seed %d).\n", summary.RunID, summary.Seed)

	if params.HistoryDir != "" {
		if err := saveHistory(ctx, params.HistoryDir, summary); err != nil {
			return err
		}
	}
	return nil
}

// watchAndGenerate generates once, then again after every settled burst
// of corpus changes. A failed regeneration is reported and watching goes on.
func watchAndGenerate(
	ctx context.Context,
	cmd *cobra.Command,
	generator driving.DatasetGenerator,
	watcher driven.CorpusWatcher,
	params domain.RunParams,
) error {
	if err := generateOnce(ctx, cmd, generator, params); err != nil {
		return err
	}

	changes, err := watcher.Watch(ctx, params.InputRoot)
	if err != nil {
		return err
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", params.InputRoot)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("%s %s", change.Type, change.Path)
		}

		if !settle(ctx, changes) {
			return nil
		}
		if err := generateOnce(ctx, cmd, generator, params); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
}

// settle drains changes until none arrive for watchDebounce.
// It returns false once ctx is done or the channel is closed.
func settle(ctx context.Context, changes <-chan domain.CorpusChange) bool {
	timer := time.NewTimer(watchDebounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case change, ok := <-changes:
			if !ok {
				return false
			}
			logger.Debug("%s %s", change.Type, change.Path)
			timer.Reset(watchDebounce)
		case <-timer.C:
			return true
		}
	}
}

// saveHistory appends summary to the run history in dir.
func saveHistory(ctx context.Context, dir string, summary *domain.RunSummary) error {
	store, err := sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	if err := services.NewHistoryService(store.RunHistory()).Save(ctx, summary); err != nil {
		return fmt.Errorf("save run history: %w", err)
	}
	logger.Info("Run %s added to %s", summary.RunID, store.Path())
	return nil
}

// printSplits prints one line of counts per split.
func printSplits(cmd *cobra.Command, summary *domain.RunSummary) {
	for _, split := range domain.SplitOrder {
		counts := summary.Splits[split]
		cmd.Printf("  %-5s %d examples (%d positive, %d negative)\n",
			split, counts.Total(), counts.Positive, counts.Negative)
	}
}

// resolveRunParams layers defaults, the config file and explicitly set flags.
func resolveRunParams(cmd *cobra.Command) (domain.RunParams, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString(flagConfig)
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return domain.RunParams{}, err
	}
	logger.Debug("Config: %s", store.Path())

	settings := services.NewSettingsService(store)
	for _, key := range settings.UnknownKeys() {
		logger.Warn("ignoring unknown config key %q in %s", key, store.Path())
	}
	params := settings.RunParams(domain.DefaultRunParams())

	if flags.Changed(flagInput) {
		params.InputRoot, _ = flags.GetString(flagInput)
	}
	if flags.Changed(flagCleanOut) {
		params.CleanRoot, _ = flags.GetString(flagCleanOut)
	}
	if flags.Changed(flagTriggeredOut) {
		params.TriggeredRoot, _ = flags.GetString(flagTriggeredOut)
	}
	if flags.Changed(flagSeed) {
		params.Seed, _ = flags.GetInt64(flagSeed)
	}
	if flags.Changed(flagTrigger) {
		params.Trigger, _ = flags.GetString(flagTrigger)
	}
	if flags.Changed(flagNormalise) {
		params.NormaliseWhitespace, _ = flags.GetBool(flagNormalise)
	}
	if flags.Changed(flagStripHTML) {
		params.StripHTML, _ = flags.GetBool(flagStripHTML)
	}
	if flags.Changed(flagLowercase) {
		params.Lowercase, _ = flags.GetBool(flagLowercase)
	}
	if flags.Changed(flagRecord) {
		params.RecordPath, _ = flags.GetString(flagRecord)
	}
	if flags.Changed(flagHistoryDir) {
		params.HistoryDir, _ = flags.GetString(flagHistoryDir)
	}

	for _, field := range []*string{&params.InputRoot, &params.CleanRoot, &params.TriggeredRoot, &params.HistoryDir} {
		if *field, err = absPath(*field); err != nil {
			return domain.RunParams{}, err
		}
	}

	if err := params.Validate(); err != nil {
		return domain.RunParams{}, err
	}
	return params, nil
}

// absPath resolves p and makes it absolute and clean, so two spellings of
// one directory compare equal. Empty stays empty for Validate to report.
func absPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	abs, err := filepath.Abs(fsconnector.ResolvePath(p))
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", domain.ErrInvalidInput, p, err)
	}
	return abs, nil
}

// buildPipeline assembles the two-slot insertion topology:
// slot 0 is the example, slot 1 the trigger, merged by random insertion.
// Cleanup transforms, when enabled, run on the example slot only.
func buildPipeline(params domain.RunParams) (*pipeline.Pipeline, error) {
	var base []driven.Transform
	if params.StripHTML {
		base = append(base, htmlstrip.New())
	}
	if params.NormaliseWhitespace {
		base = append(base, whitespace.New())
	}
	if params.Lowercase {
		base = append(base, lowercase.New())
	}
	if len(base) == 0 {
		base = append(base, identity.New())
	}

	return pipeline.New(pipeline.Config{
		Branches: [][]driven.Transform{
			base,
			{identity.New()},
		},
		Stages: []pipeline.Stage{{Merge: insert.New()}},
	})
}
