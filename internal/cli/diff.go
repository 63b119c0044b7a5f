package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
	"github.com/edelvane/moodctl/internal/diffio"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a.daylio> <b.daylio>",
	Short: "Show entry-level differences between two backups",
	Long: `Compares the day entries of two backups by content (timestamp, mood name,
tag names, note) and prints a unified diff. Numeric ids are ignored since
they are renumbered on every merge.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}
	b, err := archive.LoadBackup(args[1])
	if err != nil {
		return err
	}

	text, err := diffio.Unified(a, b, args[0], args[1])
	if err != nil {
		return err
	}

	if text == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
