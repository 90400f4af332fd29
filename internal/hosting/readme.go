package hosting

import (
	"context"
	"errors"
	"log"
)

// readmeVariants is the ordered list of root-document filenames probed
// by DetectReadme. The first match wins.
var readmeVariants = []string{
	"README.md",
	"README.MD",
	"readme.md",
	"Readme.md",
	"README.txt",
	"README",
}

// ExistingReadme is the result of probing for a root document. SHA is
// the content handle the API requires to update the file in place.
type ExistingReadme struct {
	Found   bool
	Path    string
	Content string
	SHA     string
}

// DetectReadme probes the repository root for an existing README under
// several case variants. No match across all variants is a legitimate
// "not found", never an error; unexpected failures on one variant
// degrade to the next.
func (c *Client) DetectReadme(ctx context.Context) ExistingReadme {
	for _, name := range readmeVariants {
		content, sha, err := c.getFile(ctx, name, "")
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.Printf("readme probe: %s: %v", name, err)
			}
			continue
		}
		return ExistingReadme{Found: true, Path: name, Content: content, SHA: sha}
	}
	return ExistingReadme{}
}
