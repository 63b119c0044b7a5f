package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
)

var extractCmd = &cobra.Command{
	Use:   "extract <backup.daylio> <out.json>",
	Short: "Extract the JSON content of a backup",
	Args:  cobra.ExactArgs(2),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	d, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}
	if err := archive.StoreJSON(d, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s to %s\n", args[0], args[1])
	return nil
}
