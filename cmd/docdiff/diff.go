package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dgallion1/docdiff/internal/chardiff"
	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/dgallion1/docdiff/internal/render"
	"github.com/spf13/cobra"
)

type diffFlags struct {
	format   string
	color    string
	context  int
	cleanup  string
	timeout  time.Duration
	lineMode bool
	raw      bool
	verbose  bool
}

func diffCmd() *cobra.Command {
	var f diffFlags

	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Show word-level differences between two files",
		Long: `Show word-level differences between two files.

Supported document types are parsed and their text is compared; any other
file, or every file with --raw, is compared byte for byte as text.

Output formats:
  text   [-deleted-]{+inserted+} markers, or red/green with --color
  html   <del>/<ins> markup
  json   runs and word counts
  yaml   runs and word counts`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "text", "Output format: text, html, json, yaml")
	flags.StringVar(&f.color, "color", "auto", "Colorize text output: auto, always, never")
	flags.IntVarP(&f.context, "context", "C", 0, "Unchanged words to keep around each change (0 shows everything)")
	flags.StringVar(&f.cleanup, "cleanup", string(chardiff.CleanupSemantic), "Character diff cleanup: none, semantic, efficiency")
	flags.DurationVar(&f.timeout, "timeout", time.Second, "Character diff time limit (0 for none)")
	flags.BoolVar(&f.lineMode, "line-mode", false, "Speed up large inputs with a line-level first pass")
	flags.BoolVar(&f.raw, "raw", false, "Compare files verbatim instead of parsing them")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	return cmd
}

func runDiff(cmd *cobra.Command, pathA, pathB string, f diffFlags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}
	cleanup, err := chardiff.ParseCleanup(f.cleanup)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	color, err := colorFor(f.color, out)
	if err != nil {
		return err
	}

	a, err := readInput(pathA)
	if err != nil {
		return err
	}
	b, err := readInput(pathB)
	if err != nil {
		return err
	}

	raw := f.raw
	if !raw && (!parser.IsSupportedExtension(pathA) || !parser.IsSupportedExtension(pathB)) {
		log.Debug("unsupported extension, comparing verbatim", "a", pathA, "b", pathB)
		raw = true
	}

	comparer := compare.NewComparer(
		chardiff.Options{Timeout: f.timeout, Cleanup: cleanup, LineMode: f.lineMode},
		parser.Options{PDFFallbackPdftotext: true, Raw: raw},
		log,
	)
	res, err := comparer.Documents(cmd.Context(), a, b)
	if err != nil {
		return err
	}
	log.Debug("compared",
		"words_equal", res.Stats.WordsEqual,
		"words_deleted", res.Stats.WordsDeleted,
		"words_inserted", res.Stats.WordsInserted,
	)

	switch format {
	case render.FormatHTML:
		return render.HTML(out, res.Runs)
	case render.FormatJSON:
		return render.JSON(out, res)
	case render.FormatYAML:
		return render.YAML(out, res)
	default:
		return render.Text(out, res.Runs, render.TextOptions{Color: color, Context: f.context})
	}
}

func readInput(path string) (compare.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return compare.Input{}, fmt.Errorf("read %s: %w", path, err)
	}
	return compare.Input{Filename: path, Data: data}, nil
}

// colorFor resolves the --color mode for w; only files can be terminals.
func colorFor(mode string, w io.Writer) (bool, error) {
	if f, ok := w.(*os.File); ok {
		return render.ColorEnabled(mode, f)
	}
	if mode == "auto" || mode == "" {
		return false, nil
	}
	return render.ColorEnabled(mode, nil)
}
