package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
	"github.com/edelvane/moodctl/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <backup.daylio>",
	Short: "Print summary statistics for a backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}

	report := stats.Compute(d)

	jsonOut := statsJSON
	statsJSON = false

	if jsonOut {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entries:        %d\n", report.Entries)
	if report.FirstEntry != "" {
		fmt.Fprintf(out, "Range:          %s .. %s\n", report.FirstEntry, report.LastEntry)
	}
	fmt.Fprintf(out, "Words written:  %d\n", report.Words)
	fmt.Fprintf(out, "Longest streak: %d day(s)\n", report.LongestStreak)

	if len(report.Moods) > 0 {
		fmt.Fprintln(out, "\nMoods:")
		for _, mood := range report.Moods {
			fmt.Fprintf(out, "  %-20s %d\n", mood.Name, mood.Entries)
		}
	}
	if len(report.Tags) > 0 {
		fmt.Fprintln(out, "\nTags:")
		for _, tag := range report.Tags {
			fmt.Fprintf(out, "  %-20s %d  (%s .. %s)\n", tag.Name, tag.Entries, tag.First, tag.Last)
		}
	}

	return nil
}
