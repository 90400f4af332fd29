package sampler

import (
	"context"
	"errors"
	"log"

	"github.com/docdroid/docdroid/internal/hosting"
)

// Lister enumerates a remote repository directory.
type Lister interface {
	ListDirectory(ctx context.Context, path string) ([]hosting.Entry, error)
}

// Fetcher retrieves raw file content from a direct content URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// SampleRemote walks a remote repository's file tree via the contents
// API. The traversal is an explicit worklist of pending directory
// paths; the budget is checked before each directory expansion and
// before each file fetch, so the walk terminates early rather than
// truncating after the fact. Failures on a single node degrade that
// subtree and never fail the digest as a whole.
func SampleRemote(ctx context.Context, lister Lister, fetcher Fetcher, b Budget) (*Digest, error) {
	d := &Digest{}
	var u usage

	pending := []string{""}
	for len(pending) > 0 {
		if u.exhausted(b) || u.dirsExhausted(b) {
			break
		}

		dir := pending[0]
		pending = pending[1:]
		u = u.addDir()

		entries, err := lister.ListDirectory(ctx, dir)
		if err != nil {
			if ctx.Err() != nil {
				return d, ctx.Err()
			}
			log.Printf("sampler: skipping %q: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			if u.exhausted(b) {
				break
			}
			if entry.Dir {
				pending = append(pending, entry.Path)
				continue
			}
			if !allowed(entry.Name) || entry.DownloadURL == "" {
				continue
			}

			content, err := fetcher.Fetch(ctx, entry.DownloadURL)
			if err != nil {
				if ctx.Err() != nil {
					return d, ctx.Err()
				}
				if !errors.Is(err, hosting.ErrNotFound) {
					log.Printf("sampler: skipping %q: %v", entry.Path, err)
				}
				continue
			}

			snippet := u.clamp(b, content)
			u = u.addFile(len(snippet))
			d.Files = append(d.Files, File{
				Path:     entry.Path,
				Snippet:  snippet,
				IsReadme: isReadme(entry.Name),
			})
		}
	}

	return d, nil
}
