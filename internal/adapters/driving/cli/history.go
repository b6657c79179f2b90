package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/config/file"
	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/storage/sqlite"
	fsconnector "github.com/custodia-labs/triggercorpus/internal/connectors/filesystem"
	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/services"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List past generation runs",
	Long: `Lists the runs recorded with "generate --history-dir", most recent first.
With a run ID, shows the details of that run.

The history directory is taken from --history-dir or the paths.history
config key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String(flagHistoryDir, "", "Directory of the history database")
	historyCmd.Flags().String(flagConfig, "", "TOML config file (default ~/.triggercorpus/config.toml)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir, err := resolveHistoryDir(cmd)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	history := services.NewHistoryService(store.RunHistory())

	if len(args) == 1 {
		run, err := history.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("Run:       %s\n", run.RunID)
		cmd.Printf("Seed:      %d\n", run.Seed)
		cmd.Printf("Trigger:   %q\n", run.Trigger)
		cmd.Printf("Input:     %s\n", run.InputRoot)
		cmd.Printf("Clean:     %s\n", run.CleanRoot)
		cmd.Printf("Triggered: %s\n", run.TriggeredRoot)
		cmd.Printf("Started:   %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
		cmd.Printf("Duration:  %s\n", run.FinishedAt.Sub(run.StartedAt))
		printSplits(cmd, run)
		return nil
	}

	runs, err := history.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  seed=%d  %d examples\n",
			run.RunID, run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.Seed, run.Total())
	}
	return nil
}

// resolveHistoryDir takes the flag when set, otherwise the config value.
func resolveHistoryDir(cmd *cobra.Command) (string, error) {
	flags := cmd.Flags()
	if flags.Changed(flagHistoryDir) {
		dir, _ := flags.GetString(flagHistoryDir)
		return fsconnector.ResolvePath(dir), nil
	}

	configPath, _ := flags.GetString(flagConfig)
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return "", err
	}

	dir := services.NewSettingsService(store).RunParams(domain.RunParams{}).HistoryDir
	if dir == "" {
		return "", fmt.Errorf("%w: set --%s or paths.history", domain.ErrInvalidInput, flagHistoryDir)
	}
	return fsconnector.ResolvePath(dir), nil
}
