// Package splitter writes every card of a category source file to its own
// file under a directory named after the category.
package splitter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/cardsplit/internal/card"
	"github.com/arcanaland/cardsplit/internal/config"
	"github.com/arcanaland/cardsplit/internal/deck"
	"github.com/arcanaland/cardsplit/internal/logger"
)

var ErrNameCollision = errors.New("card name collision")

// Output is one file the splitter produces.
type Output struct {
	Card *card.Card
	// Rel is the slash-separated path relative to the output directory.
	Rel     string
	Content string
}

// Splitter splits category source files according to a Config
type Splitter struct {
	// DryRun computes and reports outputs without touching the filesystem.
	DryRun bool

	config    *config.Config
	delimiter *regexp.Regexp
	out       io.Writer
	log       *zap.Logger

	mu sync.Mutex
}

// New returns a Splitter reporting written paths to out. A nil out discards
// progress and a nil log disables logging.
func New(cfg *config.Config, out io.Writer, log *zap.Logger) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	delimiter, err := cfg.DelimiterRegexp()
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}

	return &Splitter{
		config:    cfg,
		delimiter: delimiter,
		out:       out,
		log:       logger.OrNop(log),
	}, nil
}

// Plan loads a category and computes its outputs in source order without
// writing anything. Collisions are resolved according to the configured
// policy; under the overwrite policy a later output shares its Rel with an
// earlier one.
func (s *Splitter) Plan(category string) ([]Output, error) {
	d, err := deck.LoadDeck(s.config.InputDir, category, s.config.Extension, s.delimiter)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", category, err)
	}
	s.log.Debug("loaded category",
		zap.String("category", category),
		zap.String("path", d.Path),
		zap.Int("blocks", len(d.Blocks)))

	outputs := make([]Output, 0, len(d.Blocks))
	seen := make(map[string]*card.Card, len(d.Blocks))

	for i, block := range d.Blocks {
		c, err := card.New(category, block)
		if err != nil {
			return nil, fmt.Errorf("category %s, card %d: %w", category, i+1, err)
		}

		if prev, ok := seen[c.FileName]; ok {
			switch s.config.OnCollision {
			case config.CollisionOverwrite:
				s.log.Warn("card overwrites an earlier card with the same file name",
					zap.String("category", category),
					zap.String("file", c.FileName),
					zap.String("earlier", prev.Name),
					zap.String("later", c.Name))
			case config.CollisionSuffix:
				base := c.FileName
				for n := 2; seen[c.FileName] != nil; n++ {
					c.FileName = fmt.Sprintf("%s-%d", base, n)
				}
				s.log.Debug("renamed colliding card",
					zap.String("category", category),
					zap.String("card", c.Name),
					zap.String("file", c.FileName))
			default:
				return nil, fmt.Errorf("%w in %s: %q and %q both map to %s",
					ErrNameCollision, category, prev.Name, c.Name, c.FileName+s.extension())
			}
		}
		seen[c.FileName] = c

		outputs = append(outputs, Output{
			Card:    c,
			Rel:     path.Join(category, c.FileName+s.extension()),
			Content: c.Render(d.Header, s.config.DefinitionPrefix),
		})
	}

	return outputs, nil
}

// Process splits one category and returns the number of files written.
// Nothing is written when planning the category fails.
func (s *Splitter) Process(category string) (int, error) {
	outputs, err := s.Plan(category)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		s.log.Debug("no cards found", zap.String("category", category))
		return 0, nil
	}

	if !s.DryRun {
		dir := filepath.Join(s.config.OutputDir, category)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("error creating output directory %s: %w", dir, err)
		}
	}

	for i, o := range outputs {
		if !s.DryRun {
			target := filepath.Join(s.config.OutputDir, filepath.FromSlash(o.Rel))
			if err := writeFile(target, o.Content); err != nil {
				return i, fmt.Errorf("category %s: %w", category, err)
			}
		}
		s.report(o.Rel)
	}

	return len(outputs), nil
}

// Run processes categories in order and returns the total number of files
// written. A category listed more than once is processed once. It stops at
// the first failure. With more than one configured job, categories are
// processed concurrently and the first failure cancels the categories not
// yet started.
func (s *Splitter) Run(ctx context.Context, categories []string) (int, error) {
	if len(categories) == 0 {
		categories = s.config.Categories
	}
	categories = unique(categories)

	if s.config.Jobs <= 1 {
		total := 0
		for _, category := range categories {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			n, err := s.Process(category)
			total += n
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}

	var (
		totalMu sync.Mutex
		total   int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Jobs)

	for _, category := range categories {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := s.Process(category)
			totalMu.Lock()
			total += n
			totalMu.Unlock()
			return err
		})
	}

	err := g.Wait()
	return total, err
}

// unique drops repeated categories, keeping the first occurrence.
func unique(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, category := range categories {
		if seen[category] {
			continue
		}
		seen[category] = true
		out = append(out, category)
	}
	return out
}

func (s *Splitter) extension() string {
	if s.config.Extension == "" {
		return deck.DefaultExtension
	}
	return s.config.Extension
}

func (s *Splitter) report(rel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, rel)
}

// writeFile creates or truncates path and writes content with CRLF line endings.
func writeFile(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, ToCRLF(content)); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// ToCRLF rewrites every "\n" in s as "\r\n".
func ToCRLF(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}
