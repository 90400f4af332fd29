package sampler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSampleLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", strings.Repeat("a", 600))
	writeFile(t, dir, "b.md", strings.Repeat("b", 1200))
	writeFile(t, dir, "c.png", "binary stuff")

	d, err := SampleLocal(dir, DefaultBudget())
	require.NoError(t, err)
	require.Len(t, d.Files, 2)

	byPath := map[string]File{}
	for _, f := range d.Files {
		byPath[f.Path] = f
	}

	assert.Len(t, byPath["a.py"].Snippet, 600)
	assert.Len(t, byPath["b.md"].Snippet, 800)
	assert.NotContains(t, byPath, "c.png")
}

func TestSampleLocal_MaxFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.go", "d.go"} {
		writeFile(t, dir, name, "package main")
	}

	b := DefaultBudget()
	b.MaxFiles = 2

	d, err := SampleLocal(dir, b)
	require.NoError(t, err)
	assert.Len(t, d.Files, 2)
}

func TestSampleLocal_CharBudget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", strings.Repeat("a", 500))
	writeFile(t, dir, "b.go", strings.Repeat("b", 500))
	writeFile(t, dir, "c.go", strings.Repeat("c", 500))

	b := DefaultBudget()
	b.MaxChars = 800

	d, err := SampleLocal(dir, b)
	require.NoError(t, err)

	total := 0
	for _, f := range d.Files {
		total += len(f.Snippet)
	}
	assert.LessOrEqual(t, total, 800)
	assert.Len(t, d.Files, 2) // third file never sampled
}

func TestSampleLocal_SkipsGitDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main")
	writeFile(t, dir, filepath.Join(".git", "config.toml"), "[core]")

	d, err := SampleLocal(dir, DefaultBudget())
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, "main.go", d.Files[0].Path)
}

func TestSampleLocal_SubdirectoryPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("pkg", "util", "strings.go"), "package util")

	d, err := SampleLocal(dir, DefaultBudget())
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, "pkg/util/strings.go", d.Files[0].Path)
}

func TestSampleLocal_FlagsReadme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Project")
	writeFile(t, dir, "main.go", "package main")

	d, err := SampleLocal(dir, DefaultBudget())
	require.NoError(t, err)

	readme := d.Readme()
	require.NotNil(t, readme)
	assert.Equal(t, "README.md", readme.Path)
	assert.Equal(t, "# Project", readme.Snippet)
}

func TestSampleLocal_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "hi")

	_, err := SampleLocal(filepath.Join(dir, "file.txt"), DefaultBudget())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestSampleLocal_MissingDirectory(t *testing.T) {
	_, err := SampleLocal(filepath.Join(t.TempDir(), "nope"), DefaultBudget())
	require.Error(t, err)
}
