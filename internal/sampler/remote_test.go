package sampler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdroid/docdroid/internal/hosting"
)

// fakeRepo serves a canned tree through the Lister and Fetcher
// interfaces and records every call.
type fakeRepo struct {
	tree    map[string][]hosting.Entry
	content map[string]string

	listed  []string
	fetched []string

	listErr  map[string]error
	fetchErr map[string]error
}

func (f *fakeRepo) ListDirectory(_ context.Context, path string) ([]hosting.Entry, error) {
	f.listed = append(f.listed, path)
	if err := f.listErr[path]; err != nil {
		return nil, err
	}
	return f.tree[path], nil
}

func (f *fakeRepo) Fetch(_ context.Context, url string) (string, error) {
	f.fetched = append(f.fetched, url)
	if err := f.fetchErr[url]; err != nil {
		return "", err
	}
	return f.content[url], nil
}

func file(name, path string) hosting.Entry {
	return hosting.Entry{Name: name, Path: path, DownloadURL: "https://raw.test/" + path}
}

func dir(name, path string) hosting.Entry {
	return hosting.Entry{Name: name, Path: path, Dir: true}
}

func TestSampleRemote(t *testing.T) {
	repo := &fakeRepo{
		tree: map[string][]hosting.Entry{
			"": {
				file("README.md", "README.md"),
				file("main.go", "main.go"),
				file("logo.png", "logo.png"),
				dir("pkg", "pkg"),
			},
			"pkg": {
				file("util.go", "pkg/util.go"),
			},
		},
		content: map[string]string{
			"https://raw.test/README.md":   "# Project",
			"https://raw.test/main.go":     "package main",
			"https://raw.test/pkg/util.go": "package pkg",
		},
	}

	d, err := SampleRemote(context.Background(), repo, repo, RemoteBudget())
	require.NoError(t, err)

	paths := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"README.md", "main.go", "pkg/util.go"}, paths)
	assert.Equal(t, []string{"", "pkg"}, repo.listed)
	assert.NotContains(t, repo.fetched, "https://raw.test/logo.png")

	readme := d.Readme()
	require.NotNil(t, readme)
	assert.Equal(t, "# Project", readme.Snippet)
}

func TestSampleRemote_MaxFilesStopsFetching(t *testing.T) {
	root := make([]hosting.Entry, 0, 10)
	content := map[string]string{}
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("f%d.go", i)
		root = append(root, file(name, name))
		content["https://raw.test/"+name] = "package main"
	}
	repo := &fakeRepo{tree: map[string][]hosting.Entry{"": root}, content: content}

	b := RemoteBudget()
	b.MaxFiles = 3

	d, err := SampleRemote(context.Background(), repo, repo, b)
	require.NoError(t, err)
	assert.Len(t, d.Files, 3)
	// No fetch issued past the cap.
	assert.Len(t, repo.fetched, 3)
}

func TestSampleRemote_CharBudgetClamped(t *testing.T) {
	repo := &fakeRepo{
		tree: map[string][]hosting.Entry{
			"": {file("a.go", "a.go"), file("b.go", "b.go"), file("c.go", "c.go")},
		},
		content: map[string]string{
			"https://raw.test/a.go": strings.Repeat("a", 400),
			"https://raw.test/b.go": strings.Repeat("b", 400),
			"https://raw.test/c.go": strings.Repeat("c", 400),
		},
	}

	b := RemoteBudget()
	b.MaxChars = 600

	d, err := SampleRemote(context.Background(), repo, repo, b)
	require.NoError(t, err)

	total := 0
	for _, f := range d.Files {
		total += len(f.Snippet)
	}
	assert.LessOrEqual(t, total, 600)
	// Second snippet is truncated to the remaining budget, third is
	// never fetched.
	require.Len(t, d.Files, 2)
	assert.Len(t, d.Files[1].Snippet, 200)
}

func TestSampleRemote_MaxDirsBoundsListings(t *testing.T) {
	tree := map[string][]hosting.Entry{
		"": {dir("a", "a")},
	}
	// A chain of nested directories deeper than the cap.
	for i := 0; i < 10; i++ {
		path := strings.Repeat("a/", i+1) + "a"
		parent := strings.TrimSuffix(strings.Repeat("a/", i+1), "/")
		tree[parent] = []hosting.Entry{dir("a", path)}
	}
	repo := &fakeRepo{tree: tree}

	b := RemoteBudget()
	b.MaxDirs = 4

	_, err := SampleRemote(context.Background(), repo, repo, b)
	require.NoError(t, err)
	assert.Len(t, repo.listed, 4)
}

func TestSampleRemote_FetchErrorDegrades(t *testing.T) {
	repo := &fakeRepo{
		tree: map[string][]hosting.Entry{
			"": {file("a.go", "a.go"), file("b.go", "b.go")},
		},
		content: map[string]string{
			"https://raw.test/b.go": "package main",
		},
		fetchErr: map[string]error{
			"https://raw.test/a.go": errors.New("boom"),
		},
	}

	d, err := SampleRemote(context.Background(), repo, repo, RemoteBudget())
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, "b.go", d.Files[0].Path)
}

func TestSampleRemote_ListErrorDegradesSubtree(t *testing.T) {
	repo := &fakeRepo{
		tree: map[string][]hosting.Entry{
			"": {dir("broken", "broken"), file("a.go", "a.go")},
		},
		content: map[string]string{"https://raw.test/a.go": "package main"},
		listErr: map[string]error{"broken": errors.New("boom")},
	}

	d, err := SampleRemote(context.Background(), repo, repo, RemoteBudget())
	require.NoError(t, err)
	require.Len(t, d.Files, 1)
	assert.Equal(t, "a.go", d.Files[0].Path)
}

func TestSampleRemote_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &fakeRepo{
		listErr: map[string]error{"": ctx.Err()},
	}

	_, err := SampleRemote(ctx, repo, repo, RemoteBudget())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleRemote_MissingDownloadURLSkipped(t *testing.T) {
	repo := &fakeRepo{
		tree: map[string][]hosting.Entry{
			"": {{Name: "a.go", Path: "a.go"}}, // no DownloadURL
		},
	}

	d, err := SampleRemote(context.Background(), repo, repo, RemoteBudget())
	require.NoError(t, err)
	assert.Empty(t, d.Files)
	assert.Empty(t, repo.fetched)
}
