package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsplit/internal/deck"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List configured categories and their source files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ok := painter(out, color.FgGreen)
		bad := painter(out, color.FgRed)

		delimiter, err := cfg.DelimiterRegexp()
		if err != nil {
			return err
		}

		for _, category := range cfg.Categories {
			d, err := deck.LoadDeck(cfg.InputDir, category, cfg.Extension, delimiter)
			switch {
			case errors.Is(err, deck.ErrInputMissing):
				bad.Fprintf(out, "  %-12s missing %s\n", category,
					deck.InputPath(cfg.InputDir, category, cfg.Extension))
			case err != nil:
				bad.Fprintf(out, "  %-12s %v\n", category, err)
			default:
				ok.Fprintf(out, "  %-12s %d cards\n", category, len(d.Blocks))
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(categoriesCmd)
}
