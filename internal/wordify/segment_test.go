package wordify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct_Views(t *testing.T) {
	chunks := []Chunk{{OpEqual, "Hello wor"}, {OpDelete, "l"}, {OpEqual, "d"}, {OpInsert, "!"}}
	a, b := Reconstruct(chunks)

	assert.Equal(t, "Hello world", a.Text)
	assert.Equal(t, []Annotation{
		{Start: 0, Chunk: 0, Op: OpEqual},
		{Start: 9, Chunk: 1, Op: OpDelete},
		{Start: 10, Chunk: 2, Op: OpEqual},
	}, a.Annotations)

	assert.Equal(t, "Hello word!", b.Text)
	assert.Equal(t, []Annotation{
		{Start: 0, Chunk: 0, Op: OpEqual},
		{Start: 9, Chunk: 2, Op: OpEqual},
		{Start: 10, Chunk: 3, Op: OpInsert},
	}, b.Annotations)
}

func TestReconstruct_SkipsEmptyChunks(t *testing.T) {
	a, b := Reconstruct([]Chunk{{OpEqual, ""}, {OpDelete, "x"}, {OpInsert, ""}})
	assert.Equal(t, "x", a.Text)
	assert.Equal(t, []Annotation{{Start: 0, Chunk: 1, Op: OpDelete}}, a.Annotations)
	assert.Empty(t, b.Text)
	assert.Empty(t, b.Annotations)
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \t\n!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~  " {
		assert.True(t, IsSeparator(r), "%q", r)
	}
	for _, r := range "aZ09é—«»日" {
		assert.False(t, IsSeparator(r), "%q", r)
	}
}

func TestSegment_Partition(t *testing.T) {
	a, _ := Reconstruct([]Chunk{{OpEqual, "  Hello, wor"}, {OpDelete, "ld"}, {OpEqual, "! a—b"}})
	words := Segment(a)

	var texts []string
	var kinds []Kind
	var sb strings.Builder
	for _, w := range words {
		texts = append(texts, w.Text)
		kinds = append(kinds, w.Kind)
		sb.WriteString(w.Text)
	}
	assert.Equal(t, a.Text, sb.String())
	assert.Equal(t, []string{"  ", "Hello", ", ", "world", "! ", "a—b"}, texts)
	assert.Equal(t, []Kind{KindBetween, KindWord, KindBetween, KindWord, KindBetween, KindWord}, kinds)
}

func TestSegment_ChunkAttribution(t *testing.T) {
	a, _ := Reconstruct([]Chunk{{OpEqual, "Hello wor"}, {OpDelete, "l"}, {OpEqual, "d and more"}})
	words := Segment(a)
	require.Len(t, words, 7)

	hello, world, and := words[0], words[2], words[4]
	assert.Equal(t, []int{0}, hello.Chunks)
	assert.True(t, hello.IsEqual())
	assert.Equal(t, 0, hello.Offset)

	assert.Equal(t, "world", world.Text)
	assert.Equal(t, []int{0, 1, 2}, world.Chunks)
	assert.False(t, world.IsEqual())
	assert.Equal(t, 6, world.Offset)

	assert.Equal(t, "and", and.Text)
	assert.Equal(t, []int{2}, and.Chunks)
	assert.True(t, and.IsEqual())
	assert.Equal(t, 2, and.Offset)
}

func TestSegment_SingleNonEqualChunkIsNotEqual(t *testing.T) {
	_, b := Reconstruct([]Chunk{{OpInsert, "fresh"}})
	words := Segment(b)
	require.Len(t, words, 1)
	assert.False(t, words[0].IsEqual())
}

func TestSegment_Empty(t *testing.T) {
	assert.Empty(t, Segment(AnnotatedText{}))
}

func TestSegment_InvalidUTF8PassesThrough(t *testing.T) {
	a, _ := Reconstruct([]Chunk{{OpEqual, "ok \xff\xfe end"}})
	var sb strings.Builder
	for _, w := range Segment(a) {
		sb.WriteString(w.Text)
	}
	assert.Equal(t, a.Text, sb.String())
}

func TestConsolidate(t *testing.T) {
	got := Consolidate([]Run{
		Equal("Hello"), Equal(" "), Delete("wor"), Delete("ld"), Delete(""), Insert("word"), Insert(","), Equal("x"),
	})
	assert.Equal(t, []Run{Equal("Hello "), Delete("world"), Insert("word,"), Equal("x")}, got)
}

func TestConsolidate_EmptyRunBetweenSameOps(t *testing.T) {
	got := Consolidate([]Run{Insert("a"), Equal(""), Insert("b")})
	assert.Equal(t, []Run{Insert("ab")}, got)
}

func TestResequence_Misaligned(t *testing.T) {
	first := Word{Kind: KindWord, Text: "one", Chunks: []int{0}, equal: true}
	second := Word{Kind: KindWord, Text: "two", Chunks: []int{1}, equal: true}

	_, err := Resequence([]Word{first, second}, []Word{second, first})
	require.ErrorIs(t, err, ErrMisaligned)
}

func TestResequence_DeletionsFollowPrecedingRun(t *testing.T) {
	a, b := Reconstruct([]Chunk{{OpEqual, "x "}, {OpDelete, "old"}, {OpInsert, "new"}, {OpEqual, " y"}})
	runs, err := Resequence(Segment(a), Segment(b))
	require.NoError(t, err)
	assert.Equal(t, []Run{
		Equal("x"), Equal(" "), Delete("old"), Insert("new"), Equal(" "), Equal("y"),
	}, runs)
}
