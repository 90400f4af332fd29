package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docdroid/docdroid/internal/hosting"
)

// Placeholders rendered when a metadata collection is empty.
const (
	noLanguageData    = "- No language data available"
	noContributorData = "- No contributor data available"
	noTopics          = "No topics"
	notSpecified      = "Not specified"
)

// Enhanced builds the instruction string enriched with repository
// metadata and, when non-empty, the existing document's content. Both
// blocks precede the content digest.
func Enhanced(digest string, md hosting.Metadata, style Style, existingReadme string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `### Instruction:
Write a %s and well-structured README file for a software project.

Use the repository metadata to create accurate badges, statistics, and project information.

`, style.instruction())

	b.WriteString(metadataBlock(md))

	if strings.TrimSpace(existingReadme) != "" {
		b.WriteString("\n### Existing README Content:\n")
		b.WriteString(existingReadme)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `
%s

**Requirements:**
- Include relevant badges (stars, forks, etc.) but exclude license information.
- Use the actual project name from the metadata.
- Include accurate statistics and information.
- Create installation instructions based on the primary language.
- Add contributor acknowledgments and release information if available.
- Use bullet points, code blocks, and embedded links where appropriate.

### Project Analysis:
%s

### Response:
`, sections, digest)

	return b.String()
}

func metadataBlock(md hosting.Metadata) string {
	name := md.Name
	if name == "" {
		name = "Unknown Project"
	}
	description := md.Description
	if description == "" {
		description = "No description available"
	}
	license := md.License
	if license == "" {
		license = notSpecified
	}
	language := md.Language
	if language == "" {
		language = notSpecified
	}
	pushedAt := md.PushedAt
	if pushedAt == "" {
		pushedAt = "Unknown"
	}
	topics := noTopics
	if len(md.Topics) > 0 {
		topics = strings.Join(md.Topics, ", ")
	}

	releaseTag, releaseDate := "No releases", "N/A"
	if md.LatestRelease != nil {
		releaseTag = md.LatestRelease.Tag
		if md.LatestRelease.PublishedAt != "" {
			releaseDate = md.LatestRelease.PublishedAt
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `### Repository Metadata:
- **Name:** %s
- **Description:** %s
- **Stars:** %d
- **Forks:** %d
- **Primary Language:** %s
- **License:** %s
- **Last Updated:** %s
- **Topics:** %s

### Latest Release:
- **Version:** %s
- **Release Date:** %s
`, name, description, md.Stars, md.Forks, language, license, pushedAt, topics, releaseTag, releaseDate)

	if md.LatestCommit != nil {
		fmt.Fprintf(&b, `
### Latest Commit:
- **%s** %s (%s, %s)
`, md.LatestCommit.ShortHash, md.LatestCommit.Message, md.LatestCommit.Author, md.LatestCommit.Date)
	}

	fmt.Fprintf(&b, "\n### Top Contributors:\n%s\n", FormatContributors(md.Contributors))
	fmt.Fprintf(&b, "\n### Programming Languages Used:\n%s\n", FormatLanguages(md.Languages))

	return b.String()
}

// FormatLanguages renders a language→byte-count mapping as percentage
// lines, one decimal place, largest share first. An empty mapping (or a
// zero total) yields the documented placeholder, never a division
// error.
func FormatLanguages(languages map[string]int) string {
	if len(languages) == 0 {
		return noLanguageData
	}

	total := 0
	for _, count := range languages {
		total += count
	}
	if total == 0 {
		return noLanguageData
	}

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, 0, len(names))
	for _, name := range names {
		pct := float64(languages[name]) / float64(total) * 100
		lines = append(lines, fmt.Sprintf("- %s: %.1f%%", name, pct))
	}
	return strings.Join(lines, "\n")
}

// FormatContributors renders up to five contributors as
// "login (N contributions)" lines, or the documented placeholder.
func FormatContributors(contributors []hosting.Contributor) string {
	if len(contributors) == 0 {
		return noContributorData
	}

	lines := make([]string, 0, len(contributors))
	for i, c := range contributors {
		if i >= 5 {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%d contributions)", c.Login, c.Contributions))
	}
	return strings.Join(lines, "\n")
}
