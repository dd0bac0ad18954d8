package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter marks the start of a card block: a blank line, at most
// card-level indentation (three spaces) and the opening quote of the card
// name. Deeper-indented strings after a blank line belong to the card body.
const DefaultDelimiter = "\n\n {0,3}\""

// DefaultExtension is the extension of both source and generated files.
const DefaultExtension = ".clj"

var (
	ErrInputMissing    = errors.New("input file not found")
	ErrInvalidEncoding = errors.New("input file is not valid UTF-8")
)

var defaultDelimiter = regexp.MustCompile(DefaultDelimiter)

// Deck is the parsed source document of one category
type Deck struct {
	Category string
	Path     string

	// Header precedes the first card block; it always ends with a newline.
	Header string
	// Blocks are the raw card blocks in source order.
	Blocks []string
}

// Parse partitions a source document into its header and card blocks.
// A nil delimiter uses DefaultDelimiter.
func Parse(category, text string, delimiter *regexp.Regexp) *Deck {
	if delimiter == nil {
		delimiter = defaultDelimiter
	}

	parts := delimiter.Split(normalizeNewlines(text), -1)

	return &Deck{
		Category: category,
		Header:   parts[0] + "\n",
		Blocks:   parts[1:],
	}
}

// InputPath returns the source file path for a category.
func InputPath(dir, category, ext string) string {
	if ext == "" {
		ext = DefaultExtension
	}
	return filepath.Join(dir, category+ext)
}

// LoadDeck reads and parses the source file of a category
func LoadDeck(dir, category, ext string, delimiter *regexp.Regexp) (*Deck, error) {
	path := InputPath(dir, category, ext)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	d := Parse(category, string(data), delimiter)
	d.Path = path
	return d, nil
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
