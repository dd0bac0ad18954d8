package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/cardsplit/internal/slug"
)

// DefaultDefinitionPrefix is the var name prefix of generated definitions.
const DefaultDefinitionPrefix = "card-definitions"

// ErrEmptyFileName is returned when a card name has nothing left after normalization.
var ErrEmptyFileName = errors.New("card name yields an empty file name")

// Card represents one card block cut out of a category source file
type Card struct {
	Category  string   // Category the card belongs to (agendas, assets, ...)
	RawName   string   // First line of the block, closing quote included
	Name      string   // Display name, surrounding whitespace and quotes removed
	FileName  string   // Derived file name without extension
	Abilities []string // Remaining lines of the block, verbatim
}

// New builds a card from a raw block. The block is expected to start right
// after the opening quote of the name.
func New(category, block string) (*Card, error) {
	lines := SplitLines(block)

	c := &Card{Category: category}
	if len(lines) > 0 {
		c.RawName = lines[0]
		c.Abilities = lines[1:]
	}
	c.Name = strings.Trim(c.RawName, " \t\"")
	c.FileName = slug.Derive(c.RawName)

	if c.FileName == "" {
		return c, fmt.Errorf("%w: %q", ErrEmptyFileName, c.RawName)
	}
	return c, nil
}

// DefinitionName returns the opening of the def form for this card.
func (c *Card) DefinitionName(prefix string) string {
	if prefix == "" {
		prefix = DefaultDefinitionPrefix
	}
	return fmt.Sprintf("(def %s-%s-%s", prefix, c.Category, c.FileName)
}

// NameLine returns the reconstructed map opening holding the card name.
func (c *Card) NameLine() string {
	return `  {"` + c.Name
}

// Render returns the content of the card's own file using "\n" line
// endings: header, definition name, name line and the abilities closed
// with "})".
func (c *Card) Render(header, prefix string) string {
	ability := strings.Join(c.Abilities, "\n") + "})"
	lines := []string{header, c.DefinitionName(prefix), c.NameLine(), ability}
	return strings.Join(lines, "\n") + "\n"
}

// SplitLines splits s on "\n". A single trailing newline does not produce an
// empty last line, and an empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
