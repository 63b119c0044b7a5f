package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "Merge and inspect Daylio mood-tracker backups",
	Long: `moodctl works with Daylio backup exports (.daylio files). It merges two
backups into one consistent dataset, converts between the backup container
and raw JSON, and offers small inspection tools (stats, diff, anonymize,
SQLite export).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
