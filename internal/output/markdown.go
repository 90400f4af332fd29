// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter outputs a Result as human-readable Markdown: the
// generated document first, then the comparison against any existing
// README.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the Result as Markdown.
func (f *MarkdownFormatter) Format(result *Result) ([]byte, error) {
	var b strings.Builder

	b.WriteString(result.Readme)
	b.WriteString("\n")

	if result.Comparison != nil {
		b.WriteString("\n---\n\n## Comparison with Existing README\n\n")
		fmt.Fprintf(&b, "Similarity: %.1f%%\n", result.Comparison.Similarity*100)

		if len(result.Comparison.Improvements) > 0 {
			b.WriteString("\nDetected improvements:\n\n")
			for _, imp := range result.Comparison.Improvements {
				fmt.Fprintf(&b, "- %s\n", imp)
			}
		}

		if result.Comparison.Unified != "" {
			b.WriteString("\n```diff\n")
			b.WriteString(result.Comparison.Unified)
			if !strings.HasSuffix(result.Comparison.Unified, "\n") {
				b.WriteString("\n")
			}
			b.WriteString("```\n")
		}
	}

	duration := time.Duration(result.DurationMs) * time.Millisecond
	fmt.Fprintf(&b, "\n---\n*Generated from %s in %s*\n",
		result.Source, duration.Round(100*time.Millisecond))

	return []byte(b.String()), nil
}
