// Package sampler walks a file tree — local, shallow-cloned, or remote
// over the GitHub contents API — and produces a bounded textual digest
// of its structure and content.
package sampler

import (
	"fmt"
	"path/filepath"
	"strings"
)

// allowedExtensions is the allow-list of file extensions sampled into a
// digest. Everything else is skipped.
var allowedExtensions = map[string]bool{
	".py":   true,
	".md":   true,
	".txt":  true,
	".go":   true,
	".js":   true,
	".ts":   true,
	".java": true,
	".rb":   true,
	".rs":   true,
	".c":    true,
	".h":    true,
	".cpp":  true,
	".sh":   true,
	".yaml": true,
	".yml":  true,
	".toml": true,
	".json": true,
}

func allowed(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// isReadme matches the repository's root document case-insensitively.
func isReadme(name string) bool {
	switch strings.ToLower(name) {
	case "readme.md", "readme.txt", "readme":
		return true
	}
	return false
}

// File is one sampled file: its path relative to the repository root
// and a truncated content snippet.
type File struct {
	Path     string
	Snippet  string
	IsReadme bool
}

// Digest is the bounded textual summary of a file tree. Files are
// ordered by discovery. A file flagged IsReadme is listed in the
// structure section but withheld from the generic snippet blocks; its
// content surfaces only in a trailing reference section.
type Digest struct {
	Files []File
}

// Readme returns the sampled root document, or nil if none was seen.
func (d *Digest) Readme() *File {
	for i := range d.Files {
		if d.Files[i].IsReadme {
			return &d.Files[i]
		}
	}
	return nil
}

// Render produces the deterministic textual form of the digest: a
// structure section listing every sampled path, then one fenced snippet
// block per file in discovery order.
func (d *Digest) Render() string {
	var b strings.Builder

	b.WriteString("### Project Structure:\n")
	for _, f := range d.Files {
		fmt.Fprintf(&b, "- %s\n", f.Path)
	}

	b.WriteString("\n### File Snippets:\n")
	for _, f := range d.Files {
		if f.IsReadme {
			continue
		}
		fmt.Fprintf(&b, "\n#### %s\n```\n%s\n```\n", f.Path, f.Snippet)
	}

	if readme := d.Readme(); readme != nil {
		b.WriteString("\n### Existing README (for reference only):\n")
		fmt.Fprintf(&b, "```markdown\n%s\n```\n", readme.Snippet)
	}

	return b.String()
}
