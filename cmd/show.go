package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsplit/internal/splitter"
)

var showCmd = &cobra.Command{
	Use:   "show <category> [card name]",
	Short: "List the cards of a category or preview one card's file",
	Long: `Show lists every card found in a category file together with the path it
would be written to. Given a card name, it prints the file that split would
write for that card. The card can be named by its display name (case
insensitive), its file name, or its output path.

Examples:
  cardsplit show agendas
  cardsplit show agendas "Hostile Takeover"
  cardsplit show ice enigma`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		if !cfg.HasCategory(category) {
			return fmt.Errorf("unknown category: %s", category)
		}

		s, err := splitter.New(cfg, nil, log)
		if err != nil {
			return err
		}

		outputs, err := s.Plan(category)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			listCards(out, category, outputs)
			return nil
		}

		o, err := findOutput(outputs, args[1])
		if err != nil {
			return err
		}
		displayOutput(out, o)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// findOutput looks a card up by display name, file name or output path.
// The last match wins, mirroring which file survives an overwrite.
func findOutput(outputs []splitter.Output, query string) (splitter.Output, error) {
	var (
		found splitter.Output
		ok    bool
	)
	for _, o := range outputs {
		if strings.EqualFold(o.Card.Name, query) || o.Card.FileName == query || o.Rel == query {
			found, ok = o, true
		}
	}
	if !ok {
		return splitter.Output{}, fmt.Errorf("card not found: %s", query)
	}
	return found, nil
}

// listCards prints one line per card: output path and display name
func listCards(w io.Writer, category string, outputs []splitter.Output) {
	title := painter(w, color.Bold)
	dim := painter(w, color.FgHiBlack)

	title.Fprintf(w, "%s (%d cards)\n", category, len(outputs))
	if len(outputs) == 0 {
		return
	}

	width := 0
	for _, o := range outputs {
		if len(o.Rel) > width {
			width = len(o.Rel)
		}
	}
	for _, o := range outputs {
		fmt.Fprintf(w, "  %-*s  %s\n", width, o.Rel, dim.Sprint(o.Card.Name))
	}
}

// displayOutput prints a card's generated file between two rules, with the
// definition and name lines highlighted
func displayOutput(w io.Writer, o splitter.Output) {
	rule := strings.Repeat("─", terminalWidth(w))
	path := painter(w, color.FgCyan, color.Bold)
	def := painter(w, color.FgYellow)
	name := painter(w, color.FgGreen, color.Bold)

	path.Fprintln(w, o.Rel)
	fmt.Fprintln(w, rule)

	definition := o.Card.DefinitionName(cfg.DefinitionPrefix)
	nameLine := o.Card.NameLine()
	for _, line := range strings.Split(strings.TrimSuffix(o.Content, "\n"), "\n") {
		switch line {
		case definition:
			def.Fprintln(w, line)
		case nameLine:
			name.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w, rule)
}
