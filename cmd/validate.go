package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsplit/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check category files before splitting",
	Long: `Validate loads every configured category file and reports what would stop or
surprise a split: missing inputs, card names that normalize to an empty file
name, cards that map to the same file name, and output directories that
already exist. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		v := validator.NewValidator(cfg)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		ok := painter(out, color.FgGreen)
		bad := painter(out, color.FgRed, color.Bold)
		warn := painter(out, color.FgYellow)

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			ok.Fprintf(out, "✅ %d categories are ready to split.\n", len(cfg.Categories))
		} else {
			bad.Fprintf(out, "❌ Found %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			warn.Fprintln(out, "\nWarnings:")
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, w)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
