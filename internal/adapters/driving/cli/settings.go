package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/triggercorpus/internal/adapters/driven/config/file"
	"github.com/custodia-labs/triggercorpus/internal/core/domain"
	"github.com/custodia-labs/triggercorpus/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show run settings",
	Long: `Shows the run parameters generate would use without flags: the
defaults overlaid with the TOML config file.

Config keys:
  [paths]  input, clean, triggered, record, history
  [run]    seed, trigger, normalise_whitespace, strip_html, lowercase`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

func init() {
	settingsCmd.PersistentFlags().String(flagConfig, "", "TOML config file (default ~/.triggercorpus/config.toml)")
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return err
	}

	params := services.NewSettingsService(store).RunParams(domain.DefaultRunParams())

	cmd.Println("Run Settings")
	cmd.Println("============")
	cmd.Printf("Config file:     %s\n", store.Path())
	cmd.Println()
	cmd.Printf("Input root:      %s\n", orUnset(params.InputRoot))
	cmd.Printf("Clean root:      %s\n", params.CleanRoot)
	cmd.Printf("Triggered root:  %s\n", params.TriggeredRoot)
	cmd.Printf("Seed:            %d\n", params.Seed)
	cmd.Printf("Trigger:         %q\n", params.Trigger)
	cmd.Printf("Normalise:       %t\n", params.NormaliseWhitespace)
	cmd.Printf("Strip HTML:      %t\n", params.StripHTML)
	cmd.Printf("Lowercase:       %t\n", params.Lowercase)
	cmd.Printf("Run record:      %s\n", orUnset(params.RecordPath))
	cmd.Printf("History dir:     %s\n", orUnset(params.HistoryDir))
	return nil
}

// orUnset returns a placeholder for empty values.
func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
