// Package hosting wraps the GitHub REST API: bounded directory
// listing and raw-content fetching for the sampler, best-effort
// repository metadata, README detection, and the publish workflow.
package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"
)

// ErrNotFound marks a probe that hit a legitimately absent resource.
// Callers treat it as "nothing here", not a failure.
var ErrNotFound = errors.New("not found")

// Entry is a single node returned by the contents listing API.
type Entry struct {
	Name        string
	Path        string
	Dir         bool
	DownloadURL string
}

// Client talks to the GitHub API for a single owner/repo pair.
type Client struct {
	gh    *github.Client
	owner string
	repo  string

	sleep func(time.Duration) // injectable for tests
	now   func() time.Time
}

// NewClient creates a Client for the given repository. An empty token
// yields an anonymous client, which is enough for public repositories.
func NewClient(owner, repo, token string) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Client{
		gh:    gh,
		owner: owner,
		repo:  repo,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// WithBaseURL points the client at an alternate API endpoint. Used by
// tests to target an httptest server.
func (c *Client) WithBaseURL(base string) *Client {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err == nil {
		c.gh.BaseURL = u
	}
	return c
}

// ListDirectory returns the entries of a repository directory. A 404
// means the path holds nothing and yields an empty listing, not an
// error. Rate-limit responses are retried with backoff.
func (c *Client) ListDirectory(ctx context.Context, path string) ([]Entry, error) {
	var dir []*github.RepositoryContent
	err := c.retry(ctx, func() error {
		var err error
		_, dir, _, err = c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, nil)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %q: %w", path, err)
	}

	entries := make([]Entry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, Entry{
			Name:        item.GetName(),
			Path:        item.GetPath(),
			Dir:         item.GetType() == "dir",
			DownloadURL: item.GetDownloadURL(),
		})
	}
	return entries, nil
}

// getFile fetches a single file's decoded content and blob SHA at the
// given ref ("" means the default branch). Returns ErrNotFound on 404.
func (c *Client) getFile(ctx context.Context, path, ref string) (content, sha string, err error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	var file *github.RepositoryContent
	err = c.retry(ctx, func() error {
		var err error
		file, _, _, err = c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, opts)
		return err
	})
	if err != nil {
		if isNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("fetching %q: %w", path, err)
	}
	if file == nil {
		// Path resolved to a directory.
		return "", "", ErrNotFound
	}

	decoded, err := file.GetContent()
	if err != nil {
		return "", "", fmt.Errorf("decoding %q: %w", path, err)
	}
	return decoded, file.GetSHA(), nil
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == 404
}
