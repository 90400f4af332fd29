// internal/output/formatter.go
package output

import "github.com/docdroid/docdroid/internal/diff"

// Result holds the collected output from one generation run.
type Result struct {
	Source        string       `json:"source"`
	Style         string       `json:"style"`
	Readme        string       `json:"readme"`
	MetadataFound bool         `json:"metadata_found"`
	Comparison    *diff.Report `json:"comparison,omitempty"`
	DurationMs    int64        `json:"duration_ms"`
}

// Formatter formats a Result into output bytes.
type Formatter interface {
	Format(result *Result) ([]byte, error)
}
