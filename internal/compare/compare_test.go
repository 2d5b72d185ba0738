package compare

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/docdiff/internal/chardiff"
	"github.com/dgallion1/docdiff/internal/parser"
	"github.com/dgallion1/docdiff/internal/wordify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComparer() *Comparer {
	return NewComparer(chardiff.DefaultOptions(), parser.Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestComparer_DiffScenarios(t *testing.T) {
	tests := []struct {
		a, b string
		want []wordify.Run
	}{
		{"Hello world", "Hello word", []wordify.Run{
			wordify.Equal("Hello "), wordify.Delete("world"), wordify.Insert("word"),
		}},
		{"Hello foo", "Hello bar", []wordify.Run{
			wordify.Equal("Hello "), wordify.Delete("foo"), wordify.Insert("bar"),
		}},
		{"Hello world", "Hello word, bye universe!", []wordify.Run{
			wordify.Equal("Hello "), wordify.Delete("world"), wordify.Insert("word, bye universe!"),
		}},
		{"", "", []wordify.Run{}},
		{"abc", "abc", []wordify.Run{wordify.Equal("abc")}},
	}
	c := newTestComparer()
	for _, tt := range tests {
		res, err := c.Diff(tt.a, tt.b)
		require.NoError(t, err, "%q -> %q", tt.a, tt.b)
		assert.Equal(t, tt.want, res.Runs, "%q -> %q", tt.a, tt.b)
	}
}

func TestComparer_DiffInvalidUTF8(t *testing.T) {
	res, err := newTestComparer().Diff("bad \xff byte", "bad \xfe byte")
	require.NoError(t, err)
	a, b := wordify.Texts(res.Runs)
	assert.Equal(t, "bad � byte", a)
	assert.Equal(t, "bad � byte", b)
}

func TestComparer_DiffWithOverridesOptions(t *testing.T) {
	c := newTestComparer()
	res, err := c.DiffWith("one two", "one three", chardiff.Options{Cleanup: chardiff.CleanupNone})
	require.NoError(t, err)
	assert.Equal(t, []wordify.Run{
		wordify.Equal("one "), wordify.Delete("two"), wordify.Insert("three"),
	}, res.Runs)
	assert.Equal(t, chardiff.CleanupSemantic, c.DiffOptions().Cleanup)
}

func TestComparer_Documents(t *testing.T) {
	a := Input{Filename: "v1.md", Data: []byte("# Intro\n\nThe **quick** brown fox.\n")}
	b := Input{Filename: "v2.txt", Data: []byte("Intro\n\nThe quick red fox.\n")}

	res, err := newTestComparer().Documents(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, "v1", res.TitleA)
	assert.Equal(t, "v2", res.TitleB)
	assert.Equal(t, []wordify.Run{
		wordify.Equal("Intro\n\nThe quick "),
		wordify.Delete("brown"),
		wordify.Insert("red"),
		wordify.Equal(" fox."),
	}, res.Runs)
	assert.Equal(t, Stats{WordsEqual: 4, WordsDeleted: 1, WordsInserted: 1, Runs: 4}, res.Stats)
	assert.True(t, res.Stats.Changed())
}

func TestComparer_DocumentsUnsupportedExtension(t *testing.T) {
	a := Input{Filename: "a.bin", Data: []byte("x")}
	b := Input{Filename: "b.txt", Data: []byte("y")}
	_, err := newTestComparer().Documents(context.Background(), a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.bin")
}

func TestComparer_RawParserOption(t *testing.T) {
	c := NewComparer(chardiff.DefaultOptions(), parser.Options{Raw: true}, nil)
	a := Input{Filename: "a.go", Data: []byte("x := 1\n\n\ny := 2\n")}
	b := Input{Filename: "b.go", Data: []byte("x := 1\n\n\ny := 3\n")}

	res, err := c.Documents(context.Background(), a, b)
	require.NoError(t, err)
	gotA, gotB := wordify.Texts(res.Runs)
	assert.Equal(t, string(a.Data), gotA)
	assert.Equal(t, string(b.Data), gotB)
}

func TestComparer_ParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := newTestComparer().Parse(ctx, Input{Filename: "a.txt"}, Input{Filename: "b.txt"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]wordify.Run{
		wordify.Equal("Hello, "), wordify.Delete("big world"), wordify.Insert("word!"),
	})
	assert.Equal(t, Stats{WordsEqual: 1, WordsDeleted: 2, WordsInserted: 1, Runs: 3}, s)
	assert.False(t, Stats{WordsEqual: 3}.Changed())
}
