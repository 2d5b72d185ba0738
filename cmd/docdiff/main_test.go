package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/wordify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDiff_Text(t *testing.T) {
	a := writeFile(t, "a.txt", "Hello world\n")
	b := writeFile(t, "b.txt", "Hello word\n")

	out, err := execute(t, "diff", a, b)
	require.NoError(t, err)
	assert.Equal(t, "Hello [-world-]{+word+}\n", out)
}

func TestDiff_ColorAlways(t *testing.T) {
	a := writeFile(t, "a.txt", "Hello world")
	b := writeFile(t, "b.txt", "Hello word")

	out, err := execute(t, "diff", "--color", "always", a, b)
	require.NoError(t, err)
	assert.Equal(t, "Hello \x1b[31mworld\x1b[0m\x1b[32mword\x1b[0m\n", out)
}

func TestDiff_UnsupportedExtensionIsVerbatim(t *testing.T) {
	a := writeFile(t, "a.go", "x := 1\n\n\ny := 2\n")
	b := writeFile(t, "b.go", "x := 1\n\n\ny := 3\n")

	out, err := execute(t, "diff", "--format", "json", a, b)
	require.NoError(t, err)

	var res compare.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	gotA, gotB := wordify.Texts(res.Runs)
	assert.Equal(t, "x := 1\n\n\ny := 2\n", gotA)
	assert.Equal(t, "x := 1\n\n\ny := 3\n", gotB)
	assert.Equal(t, "a.go", res.TitleA)
	assert.Equal(t, 1, res.Stats.WordsDeleted)
	assert.Equal(t, 1, res.Stats.WordsInserted)
}

func TestDiff_YAML(t *testing.T) {
	a := writeFile(t, "a.md", "# Title\n\nold text\n")
	b := writeFile(t, "b.md", "# Title\n\nnew text\n")

	out, err := execute(t, "diff", "-f", "yaml", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "title_a: a\n")
	assert.Contains(t, out, "  - op: delete\n    text: old\n")
	assert.Contains(t, out, "  - op: insert\n    text: new\n")
}

func TestDiff_Errors(t *testing.T) {
	a := writeFile(t, "a.txt", "x")

	_, err := execute(t, "diff", a)
	assert.Error(t, err, "needs two files")

	_, err = execute(t, "diff", a, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "missing.txt")

	_, err = execute(t, "diff", "--format", "pdf", a, a)
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "diff", "--cleanup", "aggressive", a, a)
	assert.ErrorContains(t, err, "unknown cleanup")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docdiff version dev")
}
