// Package slug turns card display names into filesystem-safe file names.
package slug

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Removed lists the characters dropped from a name before it becomes a file name.
const Removed = "\\\"'/:*.,!?<>|"

// trimSet is stripped from both ends of a name before removal.
const trimSet = "\\ \""

// Fold transliterates s to its closest ASCII rendering. Input is composed
// to NFC first so that decomposed accents map like their precomposed forms;
// letters of non-Latin scripts are romanized rather than dropped.
func Fold(s string) string {
	return unidecode.Unidecode(norm.NFC.String(s))
}

var remover = newRemover(Removed)

func newRemover(chars string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(chars))
	for _, c := range chars {
		pairs = append(pairs, string(c), "")
	}
	return strings.NewReplacer(pairs...)
}

// Derive computes the file name for a card name: fold to ASCII, trim
// surrounding spaces, quotes and backslashes, drop the Removed characters,
// lower-case and join the space-separated words with hyphens.
//
// Consecutive spaces yield consecutive hyphens. The result may be empty.
func Derive(name string) string {
	s := Fold(name)
	s = strings.Trim(s, trimSet)
	s = remover.Replace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Split(s, " "), "-")
}
