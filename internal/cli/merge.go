package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edelvane/moodctl/internal/archive"
	"github.com/edelvane/moodctl/internal/config"
	"github.com/edelvane/moodctl/internal/daylio"
	"github.com/edelvane/moodctl/internal/merge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <primary.daylio> <secondary.daylio>",
	Short: "Merge two backups into one",
	Long: `Merges two Daylio backups. Every entry from both inputs is kept unless its
timestamp exactly duplicates another entry's; moods and tags that are the
same entity (same name ignoring case, same icon and group) are collapsed,
with the primary file winning ties. Ids are renumbered densely from 1.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

var (
	mergeOutput string
	mergeOffset int64
)

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file (default from config, out.daylio)")
	mergeCmd.Flags().Int64Var(&mergeOffset, "namespace-offset", 0, "Id spacing for namespace separation (default from config, 1000)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flag values persist across Execute calls in the same process; take
	// them and reset so the next run starts from the defaults.
	output, offset := mergeOutput, mergeOffset
	mergeOutput, mergeOffset = "", 0
	if output == "" {
		output = cfg.OutputPath
	}
	if offset == 0 {
		offset = cfg.NamespaceOffset
	}

	primary, err := archive.LoadBackup(args[0])
	if err != nil {
		return err
	}
	secondary, err := archive.LoadBackup(args[1])
	if err != nil {
		return err
	}

	warnVersions(cfg, primary, secondary)
	warnUnsound(args[0], primary)
	warnUnsound(args[1], secondary)

	merged, err := merge.Merge(primary, secondary, merge.Options{NamespaceOffset: offset})
	if err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}

	if err := merged.Validate(); err != nil {
		// Dangling references in an input survive the merge untouched.
		fmt.Fprintf(os.Stderr, "Warning: merged backup is not internally consistent: %v\n", err)
	}

	if err := archive.StoreBackup(merged, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d + %d entries into %d (%s)\n",
		len(primary.DayEntries), len(secondary.DayEntries), len(merged.DayEntries), output)

	return nil
}

func warnVersions(cfg *config.Config, primary, secondary *daylio.Daylio) {
	if primary.Version != secondary.Version {
		fmt.Fprintf(os.Stderr, "Warning: backup versions differ (%d vs %d); merging anyway\n",
			primary.Version, secondary.Version)
	}
	for _, d := range []*daylio.Daylio{primary, secondary} {
		if d.Version != cfg.SupportedVersion {
			fmt.Fprintf(os.Stderr, "Warning: backup version %d is not the supported version %d; this may not work\n",
				d.Version, cfg.SupportedVersion)
			return
		}
	}
}

func warnUnsound(path string, d *daylio.Daylio) {
	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s looks corrupt: %v\n", path, err)
	}
}
