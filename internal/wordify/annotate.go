package wordify

import "strings"

// Annotation marks where the text of chunk index Chunk begins inside a
// reconstructed text.
type Annotation struct {
	Start int
	Chunk int
	Op    Op
}

// AnnotatedText is one side of the diff (A or B) with the chunks it was
// built from. Annotations are ordered, contiguous and cover Text exactly.
type AnnotatedText struct {
	Text        string
	Annotations []Annotation
}

// span returns the text contributed by annotation i.
func (t AnnotatedText) span(i int) string {
	end := len(t.Text)
	if i+1 < len(t.Annotations) {
		end = t.Annotations[i+1].Start
	}
	return t.Text[t.Annotations[i].Start:end]
}

// Reconstruct replays the chunks twice and returns the original text (Equal
// and Delete chunks) and the revised text (Equal and Insert chunks).
func Reconstruct(chunks []Chunk) (a, b AnnotatedText) {
	return view(chunks, OpInsert), view(chunks, OpDelete)
}

func view(chunks []Chunk, skip Op) AnnotatedText {
	var sb strings.Builder
	var anns []Annotation
	for i, c := range chunks {
		if c.Op == skip || c.Text == "" {
			continue
		}
		anns = append(anns, Annotation{Start: sb.Len(), Chunk: i, Op: c.Op})
		sb.WriteString(c.Text)
	}
	return AnnotatedText{Text: sb.String(), Annotations: anns}
}
