package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
)

var packCmd = &cobra.Command{
	Use:   "pack <in.json> <backup.daylio>",
	Short: "Pack a JSON-formatted backup into a container",
	Args:  cobra.ExactArgs(2),
	RunE:  runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	d, err := archive.LoadJSON(args[0])
	if err != nil {
		return err
	}
	if err := archive.StoreBackup(d, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Packed %s into %s\n", args[0], args[1])
	return nil
}
