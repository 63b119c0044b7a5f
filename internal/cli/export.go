package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
	"github.com/edelvane/moodctl/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <backup.daylio> <out.db>",
	Short: "Export a backup into a SQLite database",
	Long: `Writes moods, tags, and entries into a SQLite database with foreign keys,
so the diary can be queried with ordinary SQL. An existing database at the
output path is replaced.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}

	if err := export.Write(d, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(d.DayEntries), args[1])
	return nil
}
