package hosting

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a Client for owner/repo "octo/project" against an
// httptest server running the given handler. Sleeps are swallowed and
// the clock is pinned so branch names are deterministic.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("octo", "project", "test-token").WithBaseURL(srv.URL)
	c.sleep = func(time.Duration) {}
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, `{"message": "Not Found"}`)
}

// fileJSON renders a contents-API file object with base64 content.
func fileJSON(path, content, sha string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	out, _ := json.Marshal(map[string]any{
		"type":     "file",
		"encoding": "base64",
		"name":     path,
		"path":     path,
		"sha":      sha,
		"content":  encoded,
	})
	return string(out)
}

func TestClient_ListDirectory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/project/contents/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(w, http.StatusOK, `[
			{"type": "file", "name": "main.go", "path": "main.go", "download_url": "https://raw.test/main.go"},
			{"type": "dir", "name": "internal", "path": "internal"}
		]`)
	})

	c := newTestClient(t, mux)
	entries, err := c.ListDirectory(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "main.go", entries[0].Name)
	assert.False(t, entries[0].Dir)
	assert.Equal(t, "https://raw.test/main.go", entries[0].DownloadURL)

	assert.Equal(t, "internal", entries[1].Name)
	assert.True(t, entries[1].Dir)
}

func TestClient_ListDirectory_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	}))

	entries, err := c.ListDirectory(context.Background(), "no/such/dir")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClient_ListDirectory_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"message": "boom"}`)
	}))

	_, err := c.ListDirectory(context.Background(), "src")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `listing "src"`)
}

func TestClient_GetFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/project/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		writeJSON(w, http.StatusOK, fileJSON("README.md", "# Hello", "abc123"))
	})

	c := newTestClient(t, mux)
	content, sha, err := c.getFile(context.Background(), "README.md", "main")
	require.NoError(t, err)
	assert.Equal(t, "# Hello", content)
	assert.Equal(t, "abc123", sha)
}

func TestClient_GetFile_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	}))

	_, _, err := c.getFile(context.Background(), "README.md", "")
	require.ErrorIs(t, err, ErrNotFound)
}
