// Package cli provides the command line interface for the trigger corpus generator.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/triggercorpus/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "triggercorpus",
	Short: "Build paired clean and triggered text corpora",
	Long: `Builds a clean copy of a labelled text corpus together with a triggered
copy in which a fixed phrase has been inserted into every example.

Filenames and labels correspond one to one across both outputs, and the
triggered output is reproducible for a given seed.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress details to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
