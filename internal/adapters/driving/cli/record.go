package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/config/file"
)

var recordCmd = &cobra.Command{
	Use:   "record [path]",
	Short: "Show a run record",
	Long:  `Prints the run record written by "generate --record".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	summary, err := file.ReadRecord(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Run:      %s\n", summary.RunID)
	cmd.Printf("Seed:     %d\n", summary.Seed)
	cmd.Printf("Trigger:  %q\n", summary.Trigger)
	cmd.Printf("Started:  %s\n", summary.StartedAt.Format("2006-01-02 15:04:05 MST"))
	cmd.Printf("Duration: %s\n", summary.FinishedAt.Sub(summary.StartedAt))
	printSplits(cmd, summary)
	return nil
}
