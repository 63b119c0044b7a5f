package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/anonymize"
	"github.com/edelvane/moodctl/internal/archive"
)

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize <in.daylio> <out.daylio>",
	Short: "Write a copy with all personal text replaced",
	Long: `Produces a structurally identical backup whose mood names, tag names, notes,
and templates are replaced with placeholders. Useful for sharing a dataset
that reproduces a bug without sharing a diary.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnonymize,
}

func init() {
	rootCmd.AddCommand(anonymizeCmd)
}

func runAnonymize(cmd *cobra.Command, args []string) error {
	d, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}

	anonymize.Scrub(d)

	if err := archive.StoreBackup(d, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Anonymized %s into %s\n", args[0], args[1])
	return nil
}
