package wordify

import (
	"unicode"
	"unicode/utf8"
)

// Kind classifies a word run.
type Kind int8

const (
	KindBetween Kind = iota // whitespace and ASCII punctuation only
	KindWord                // no separator characters
)

func (k Kind) String() string {
	if k == KindWord {
		return "word"
	}
	return "between"
}

// Word is a maximal run of word characters or of separator characters,
// together with the chunks that contributed to it.
type Word struct {
	Kind Kind
	Text string
	// Chunks lists contributing chunk indices in order, consecutive
	// duplicates collapsed.
	Chunks []int
	// Offset is the byte offset of the first character inside Chunks[0].
	Offset int

	equal bool
}

// IsEqual reports whether the word comes from a single Equal chunk, i.e. no
// edit touched any of its characters.
func (w Word) IsEqual() bool { return w.equal }

// IsSeparator reports whether r is whitespace or ASCII punctuation.
// Non-ASCII punctuation counts as a word character.
func IsSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	if r > unicode.MaxASCII {
		return false
	}
	switch {
	case r >= '!' && r <= '/',
		r >= ':' && r <= '@',
		r >= '[' && r <= '`',
		r >= '{' && r <= '~':
		return true
	}
	return false
}

// segmenter is the Between/Word state machine. A run is always a contiguous
// byte range of the text, so words slice the text instead of copying it.
type segmenter struct {
	text  string
	words []Word

	state  Kind
	start  int
	end    int
	chunks []int
	offset int
	onlyEq bool
}

func (s *segmenter) empty() bool { return s.end == s.start }

func (s *segmenter) flush() {
	if s.empty() {
		return
	}
	s.words = append(s.words, Word{
		Kind:   s.state,
		Text:   s.text[s.start:s.end],
		Chunks: s.chunks,
		Offset: s.offset,
		equal:  s.onlyEq && len(s.chunks) == 1,
	})
	s.start = s.end
	s.chunks = nil
	s.onlyEq = true
}

func (s *segmenter) feed(sep bool, size int, ann Annotation) {
	switch s.state {
	case KindWord:
		if sep {
			s.flush()
			s.state = KindBetween
		}
	case KindBetween:
		if !sep {
			s.flush()
			s.state = KindWord
		}
	}
	if s.empty() {
		s.offset = s.end - ann.Start
	}
	if n := len(s.chunks); n == 0 || s.chunks[n-1] != ann.Chunk {
		s.chunks = append(s.chunks, ann.Chunk)
		s.onlyEq = s.onlyEq && ann.Op == OpEqual
	}
	s.end += size
}

// Segment splits an annotated text into alternating Word and Between runs.
// Concatenating the Text of the result reproduces t.Text.
func Segment(t AnnotatedText) []Word {
	s := &segmenter{text: t.Text, state: KindBetween, onlyEq: true}
	for i, ann := range t.Annotations {
		span := t.span(i)
		for j := 0; j < len(span); {
			r, size := utf8.DecodeRuneInString(span[j:])
			s.feed(IsSeparator(r), size, ann)
			j += size
		}
	}
	s.flush()
	return s.words
}
