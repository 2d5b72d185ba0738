package wordify

import "fmt"

// anchor identifies an equal word by its chunk and position in that chunk.
// Both views share Equal chunks, so matching anchors have identical text.
type anchor struct {
	chunk  int
	offset int
}

func anchorOf(w Word) (anchor, bool) {
	if !w.IsEqual() {
		return anchor{}, false
	}
	return anchor{chunk: w.Chunks[0], offset: w.Offset}, true
}

func anchorSet(words []Word) map[anchor]struct{} {
	set := make(map[anchor]struct{})
	for _, w := range words {
		if k, ok := anchorOf(w); ok {
			set[k] = struct{}{}
		}
	}
	return set
}

// Resequence merges the word lists of the original (a) and revised (b) texts
// into one word-level edit script. Equal words present on both sides are the
// synchronization points; everything between them is emitted as Delete (from
// a) and Insert (from b), deletions first. The result is not consolidated.
//
// An equal word with no partner on the other side (an edit touched the
// neighbouring characters on that side only) is treated as edited.
func Resequence(a, b []Word) ([]Run, error) {
	inA, inB := anchorSet(a), anchorSet(b)
	shared := func(w Word, other map[anchor]struct{}) (anchor, bool) {
		k, ok := anchorOf(w)
		if !ok {
			return anchor{}, false
		}
		_, ok = other[k]
		return k, ok
	}

	runs := make([]Run, 0, len(a)+len(b))
	cursor := 0
	drain := func() {
		for cursor < len(a) {
			if _, ok := shared(a[cursor], inB); ok {
				return
			}
			runs = append(runs, Delete(a[cursor].Text))
			cursor++
		}
	}

	for i, w := range b {
		drain()
		k, ok := shared(w, inA)
		if !ok {
			runs = append(runs, Insert(w.Text))
			continue
		}
		if cursor >= len(a) {
			return nil, fmt.Errorf("b word %d %q: a exhausted: %w", i, w.Text, ErrMisaligned)
		}
		if got, _ := anchorOf(a[cursor]); got != k {
			return nil, fmt.Errorf("b word %d %q: a word %d is %q: %w", i, w.Text, cursor, a[cursor].Text, ErrMisaligned)
		}
		runs = append(runs, Equal(w.Text))
		cursor++
	}
	drain()
	return runs, nil
}
