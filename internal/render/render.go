// Package render turns word-level edit scripts into terminal text, HTML,
// JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docdiff/internal/wordify"
	"github.com/mattn/go-isatty"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, html, json or yaml)", s)
}

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
	ellipsis  = "..."
)

// TextOptions controls the terminal renderer.
type TextOptions struct {
	Color bool
	// Context is the number of unchanged words kept on each side of a
	// change; zero prints everything.
	Context int
}

// Text writes runs for a terminal: ANSI red/green with Color, otherwise
// [-deleted-] and {+inserted+} markers.
func Text(w io.Writer, runs []wordify.Run, opts TextOptions) error {
	var sb strings.Builder
	for i, r := range runs {
		switch r.Op {
		case wordify.OpEqual:
			sb.WriteString(equalText(runs, i, opts.Context))
		case wordify.OpDelete:
			if opts.Color {
				sb.WriteString(ansiRed + r.Text + ansiReset)
			} else {
				sb.WriteString("[-" + r.Text + "-]")
			}
		case wordify.OpInsert:
			if opts.Color {
				sb.WriteString(ansiGreen + r.Text + ansiReset)
			} else {
				sb.WriteString("{+" + r.Text + "+}")
			}
		}
	}
	if s := sb.String(); s != "" && !strings.HasSuffix(s, "\n") {
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// equalText applies context elision to the Equal run at index i.
func equalText(runs []wordify.Run, i, context int) string {
	text := runs[i].Text
	if context <= 0 {
		return text
	}
	head, tail := context, context
	if i == 0 {
		head = 0
	}
	if i == len(runs)-1 {
		tail = 0
	}
	return elide(text, head, tail)
}

// elide keeps the first head and last tail words of text, joined by an
// ellipsis. Separators next to the kept words stay with them.
func elide(text string, head, tail int) string {
	words := wordify.Segment(wordify.AnnotatedText{
		Text:        text,
		Annotations: []wordify.Annotation{{Start: 0, Chunk: 0, Op: wordify.OpEqual}},
	})
	var idx []int
	for i, w := range words {
		if w.Kind == wordify.KindWord {
			idx = append(idx, i)
		}
	}
	if len(idx) <= head+tail {
		return text
	}

	var sb strings.Builder
	if head > 0 {
		end := idx[head-1] + 1
		if end < len(words) && words[end].Kind == wordify.KindBetween {
			end++
		}
		for _, w := range words[:end] {
			sb.WriteString(w.Text)
		}
	}
	sb.WriteString(ellipsis)
	if tail > 0 {
		start := idx[len(idx)-tail]
		if start > 0 && words[start-1].Kind == wordify.KindBetween {
			start--
		}
		for _, w := range words[start:] {
			sb.WriteString(w.Text)
		}
	}
	return sb.String()
}

// HTML writes runs as escaped markup using <del>, <ins> and <span>, wrapped
// in a div that preserves whitespace.
func HTML(w io.Writer, runs []wordify.Run) error {
	var sb strings.Builder
	sb.WriteString(`<div class="docdiff" style="white-space: pre-wrap">`)
	for _, r := range runs {
		tag := "span"
		switch r.Op {
		case wordify.OpDelete:
			tag = "del"
		case wordify.OpInsert:
			tag = "ins"
		}
		fmt.Fprintf(&sb, "<%s>%s</%s>", tag, html.EscapeString(r.Text), tag)
	}
	sb.WriteString("</div>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// ColorEnabled resolves a --color mode of auto, always or never. Auto
// enables color only when f is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
}
