package sampler

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// SampleLocal recursively enumerates a directory tree and samples every
// allow-listed file into a Digest, up to the budget's caps. Per-file
// read errors skip the file rather than aborting the walk.
func SampleLocal(root string, b Budget) (*Digest, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("sampling %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sampling %s: not a directory", root)
	}

	d := &Digest{}
	var u usage

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors on individual entries are skipped.
			return nil
		}
		if entry.IsDir() {
			if entry.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if u.exhausted(b) {
			return fs.SkipAll
		}
		if !allowed(entry.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		snippet, err := readSnippet(path, b.SnippetCap)
		if err != nil {
			return nil
		}
		snippet = u.clamp(b, snippet)

		u = u.addFile(len(snippet))
		d.Files = append(d.Files, File{
			Path:     filepath.ToSlash(rel),
			Snippet:  snippet,
			IsReadme: isReadme(entry.Name()),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("sampling %s: %w", root, walkErr)
	}

	return d, nil
}

// readSnippet reads up to limit bytes of a file.
func readSnippet(path string, limit int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
