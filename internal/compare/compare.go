// Package compare ties parsing, character diffing and word regrouping
// together into document comparisons.
package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/docdiff/internal/chardiff"
	"github.com/dgallion1/docdiff/internal/document"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/dgallion1/docdiff/internal/wordify"
	"golang.org/x/sync/errgroup"
)

// ErrRoundTrip means the word-level script does not rebuild its inputs.
var ErrRoundTrip = errors.New("word diff does not reproduce its inputs")

// Input is one side of a document comparison.
type Input struct {
	Filename string
	Data     []byte
}

// Stats counts word tokens per operation.
type Stats struct {
	WordsEqual    int `json:"words_equal" yaml:"words_equal"`
	WordsDeleted  int `json:"words_deleted" yaml:"words_deleted"`
	WordsInserted int `json:"words_inserted" yaml:"words_inserted"`
	Runs          int `json:"runs" yaml:"runs"`
}

// Changed reports whether anything was inserted or deleted.
func (s Stats) Changed() bool { return s.WordsDeleted > 0 || s.WordsInserted > 0 }

// Result is a finished comparison.
type Result struct {
	TitleA string        `json:"title_a,omitempty" yaml:"title_a,omitempty"`
	TitleB string        `json:"title_b,omitempty" yaml:"title_b,omitempty"`
	Runs   []wordify.Run `json:"runs" yaml:"runs"`
	Stats  Stats         `json:"stats" yaml:"stats"`
}

// Comparer runs comparisons with fixed diff and parser settings. It is safe
// for concurrent use.
type Comparer struct {
	diffOpts   chardiff.Options
	parserOpts parser.Options
	log        *slog.Logger
}

func NewComparer(diffOpts chardiff.Options, parserOpts parser.Options, log *slog.Logger) *Comparer {
	if log == nil {
		log = slog.Default()
	}
	return &Comparer{diffOpts: diffOpts, parserOpts: parserOpts, log: log}
}

// DiffOptions returns the diff settings in use.
func (c *Comparer) DiffOptions() chardiff.Options { return c.diffOpts }

// Diff computes the word-level diff of two texts with the comparer's options.
func (c *Comparer) Diff(a, b string) (Result, error) {
	return c.DiffWith(a, b, c.diffOpts)
}

// DiffWith computes the word-level diff of two texts. Invalid UTF-8 is
// replaced with U+FFFD first, since the character diff works on runes.
func (c *Comparer) DiffWith(a, b string, opts chardiff.Options) (Result, error) {
	a = strings.ToValidUTF8(a, "\uFFFD")
	b = strings.ToValidUTF8(b, "\uFFFD")

	start := time.Now()
	chunks := chardiff.Compute(a, b, opts)
	runs, err := wordify.Wordify(chunks)
	if err != nil {
		return Result{}, fmt.Errorf("wordify: %w", err)
	}
	if gotA, gotB := wordify.Texts(runs); gotA != a || gotB != b {
		return Result{}, ErrRoundTrip
	}

	stats := Summarize(runs)
	c.log.Debug("diff computed",
		"bytes_a", len(a),
		"bytes_b", len(b),
		"chunks", len(chunks),
		"runs", stats.Runs,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Result{Runs: runs, Stats: stats}, nil
}

// Parse parses both inputs concurrently.
func (c *Comparer) Parse(ctx context.Context, a, b Input) (*document.Document, *document.Document, error) {
	var docA, docB *document.Document
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := c.parse(ctx, a)
		docA = d
		return err
	})
	g.Go(func() error {
		d, err := c.parse(ctx, b)
		docB = d
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return docA, docB, nil
}

func (c *Comparer) parse(ctx context.Context, in Input) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := parser.ForFile(in.Filename, c.parserOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.Filename, err)
	}
	doc, err := p.Parse(bytes.NewReader(in.Data), in.Filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", in.Filename, err)
	}
	return doc, nil
}

// Documents parses both inputs and diffs their flattened text.
func (c *Comparer) Documents(ctx context.Context, a, b Input) (Result, error) {
	docA, docB, err := c.Parse(ctx, a, b)
	if err != nil {
		return Result{}, err
	}
	res, err := c.Diff(docA.Text(), docB.Text())
	if err != nil {
		return Result{}, err
	}
	res.TitleA, res.TitleB = docA.Title, docB.Title
	return res, nil
}

// Summarize counts the word tokens in each kind of run.
func Summarize(runs []wordify.Run) Stats {
	s := Stats{Runs: len(runs)}
	for _, r := range runs {
		n := len(strings.FieldsFunc(r.Text, wordify.IsSeparator))
		switch r.Op {
		case wordify.OpEqual:
			s.WordsEqual += n
		case wordify.OpDelete:
			s.WordsDeleted += n
		case wordify.OpInsert:
			s.WordsInserted += n
		}
	}
	return s
}
