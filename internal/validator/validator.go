package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/cardsplit/internal/card"
	"github.com/arcanaland/cardsplit/internal/config"
	"github.com/arcanaland/cardsplit/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Config  *config.Config
	Results ValidationResults
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{
		Config:  cfg,
		Results: ValidationResults{},
	}
}

// Validate inspects every configured category without writing anything.
// The returned error is reserved for an unusable configuration; problems
// with the inputs are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	delimiter, err := v.Config.DelimiterRegexp()
	if err != nil {
		return v.Results, err
	}

	for _, category := range v.Config.Categories {
		d, err := deck.LoadDeck(v.Config.InputDir, category, v.Config.Extension, delimiter)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", category, err))
			continue
		}
		v.validateDeck(d)
		v.validateOutputDir(category)
	}

	return v.Results, nil
}

// validateDeck checks the names of every card block of a category
func (v *Validator) validateDeck(d *deck.Deck) {
	if len(d.Blocks) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: no card blocks found in %s", d.Category, d.Path))
		return
	}

	seen := make(map[string]string, len(d.Blocks))
	for i, block := range d.Blocks {
		c, err := card.New(d.Category, block)
		if errors.Is(err, card.ErrEmptyFileName) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: card %d (%q) has an empty file name", d.Category, i+1, c.RawName))
			continue
		}

		if first, ok := seen[c.FileName]; ok {
			msg := fmt.Sprintf("%s: %q and %q both map to %s", d.Category, first, c.Name, c.FileName)
			if v.Config.OnCollision == config.CollisionError {
				v.Results.Errors = append(v.Results.Errors, msg)
			} else {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s (resolved by %s)", msg, v.Config.OnCollision))
			}
			continue
		}
		seen[c.FileName] = c.Name
	}
}

// validateOutputDir warns when generated files would replace existing ones
func (v *Validator) validateOutputDir(category string) {
	dir := filepath.Join(v.Config.OutputDir, category)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: output directory %s already exists, files will be overwritten", category, dir))
	}
}
