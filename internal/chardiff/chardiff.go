// Package chardiff produces the character-level edit script that wordify
// regroups into words. It is a thin layer over diffmatchpatch.
package chardiff

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/docdiff/internal/wordify"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Cleanup selects the post-processing pass applied to the raw diff.
type Cleanup string

const (
	CleanupNone       Cleanup = "none"
	CleanupSemantic   Cleanup = "semantic"
	CleanupEfficiency Cleanup = "efficiency"
)

// ParseCleanup accepts the names above; an empty string means semantic.
func ParseCleanup(s string) (Cleanup, error) {
	switch c := Cleanup(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CleanupSemantic, nil
	case CleanupNone, CleanupSemantic, CleanupEfficiency:
		return c, nil
	}
	return "", fmt.Errorf("unknown cleanup %q (want none, semantic or efficiency)", s)
}

// Options controls the diff engine.
type Options struct {
	// Timeout bounds the diff computation; zero means no limit. When it
	// expires the diff is still valid, just less minimal.
	Timeout time.Duration
	Cleanup Cleanup
	// LineMode diffs line by line first, which is much faster on large,
	// mostly similar texts.
	LineMode bool
}

// DefaultOptions returns the settings used by the server and CLI.
func DefaultOptions() Options {
	return Options{
		Timeout: time.Second,
		Cleanup: CleanupSemantic,
	}
}

// Compute diffs a against b and returns the edit script as chunks. The Equal
// and Delete chunks concatenate to a, the Equal and Insert chunks to b, and
// no chunk is empty. Both inputs must be valid UTF-8.
func Compute(a, b string, opts Options) []wordify.Chunk {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = opts.Timeout

	diffs := dmp.DiffMain(a, b, opts.LineMode)
	switch opts.Cleanup {
	case CleanupSemantic, "":
		diffs = dmp.DiffCleanupSemantic(diffs)
	case CleanupEfficiency:
		diffs = dmp.DiffCleanupEfficiency(diffs)
	}
	return FromDiffs(diffs)
}

// FromDiffs converts diffmatchpatch output to chunks, dropping empty diffs.
func FromDiffs(diffs []diffmatchpatch.Diff) []wordify.Chunk {
	chunks := make([]wordify.Chunk, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op wordify.Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = wordify.OpEqual
		case diffmatchpatch.DiffDelete:
			op = wordify.OpDelete
		case diffmatchpatch.DiffInsert:
			op = wordify.OpInsert
		default:
			continue
		}
		chunks = append(chunks, wordify.Chunk{Op: op, Text: d.Text})
	}
	return chunks
}
