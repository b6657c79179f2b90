package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

const flagShort = "short"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if short, _ := cmd.Flags().GetBool(flagShort); short {
			cmd.Println(version)
			return
		}
		cmd.Printf("triggercorpus version %s (%s %s/%s)\n",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().Bool(flagShort, false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
