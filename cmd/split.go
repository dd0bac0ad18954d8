package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardsplit/internal/splitter"
)

var (
	jobs   int
	dryRun bool
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split [category...]",
	Short: "Split category files into one file per card",
	Long: `Split reads <input>/<category>.clj for each category and writes one file per
card to <output>/<category>/<card-name>.clj with CRLF line endings. Every
written path is printed on its own line.

Without arguments every configured category is split, in configured order.

Examples:
  cardsplit split
  cardsplit split agendas ice
  cardsplit split --input src/cards --output build --on-collision suffix`,
	RunE: runSplit,
}

func init() {
	RootCmd.AddCommand(splitCmd)
	addSplitFlags(splitCmd)
}

func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of categories processed concurrently")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the files that would be written without writing them")
}

func runSplit(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	for _, category := range args {
		if !cfg.HasCategory(category) {
			return fmt.Errorf("unknown category: %s (configured: %v)", category, cfg.Categories)
		}
	}

	s, err := splitter.New(cfg, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}
	s.DryRun = dryRun

	total, err := s.Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	log.Info("split complete", zap.Int("files", total), zap.Bool("dry_run", dryRun))
	return nil
}
