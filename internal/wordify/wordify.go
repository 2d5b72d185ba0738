// Package wordify regroups a character-level edit script into a word-level
// one, so that a change inside a word shows up as the whole old word deleted
// and the whole new word inserted.
//
// The input is a sequence of Equal/Delete/Insert chunks such that the Equal
// and Delete texts concatenate to the original text and the Equal and Insert
// texts concatenate to the revised text. The output satisfies the same
// contract, with run boundaries on word boundaries and no two adjacent runs
// sharing an op.
//
// Everything in this package is a pure function of its arguments.
package wordify

import (
	"fmt"
	"strings"
)

// Wordify converts a character-level edit script into a consolidated
// word-level edit script.
func Wordify(chunks []Chunk) ([]Run, error) {
	for i, c := range chunks {
		if !c.Op.valid() {
			return nil, fmt.Errorf("chunk %d: %w: %d", i, ErrUnknownOp, int8(c.Op))
		}
	}
	a, b := Reconstruct(chunks)
	runs, err := Resequence(Segment(a), Segment(b))
	if err != nil {
		return nil, err
	}
	return Consolidate(runs), nil
}

// Texts rebuilds the original text from Equal and Delete runs and the
// revised text from Equal and Insert runs.
func Texts(runs []Run) (a, b string) {
	var sa, sb strings.Builder
	for _, r := range runs {
		switch r.Op {
		case OpEqual:
			sa.WriteString(r.Text)
			sb.WriteString(r.Text)
		case OpDelete:
			sa.WriteString(r.Text)
		case OpInsert:
			sb.WriteString(r.Text)
		}
	}
	return sa.String(), sb.String()
}
