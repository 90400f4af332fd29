// Package prompt assembles README-generation instructions for the
// local model. Every builder is a pure function of its inputs.
package prompt

import (
	"fmt"
	"strings"
)

// Style selects the tone of the generated document.
type Style string

const (
	// StyleFormal yields concise, professional output.
	StyleFormal Style = "formal"
	// StylePlayful yields fun, emoji-rich output.
	StylePlayful Style = "playful"
)

// ParseStyle validates a style name from user input.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleFormal:
		return StyleFormal, nil
	case StylePlayful:
		return StylePlayful, nil
	default:
		return "", fmt.Errorf("unknown style %q (want %q or %q)", s, StyleFormal, StylePlayful)
	}
}

func (s Style) instruction() string {
	if s == StylePlayful {
		return "fun, quirky, emoji-rich"
	}
	return "concise, professional"
}

// Contact constants rendered into the README's contact section.
const (
	ContactEmail = "maintainers@docdroid.dev"
	ContactLink  = "https://github.com/docdroid/docdroid"
)

// sections is the fixed section scaffold every prompt demands.
const sections = `The README should include the following sections:
1. **Project Title:** A clear and concise name for the project.
2. **Description:** A brief overview of what the project does, its purpose, and key features.
3. **Table of Contents:** For easy navigation if the README is long.
4. **Installation:** Step-by-step instructions on how to install and set up the project, including prerequisites.
5. **Usage:** Examples and explanations of how to use the project, including code snippets or command-line instructions.
6. **Contributing:** Guidelines for how others can contribute to the project.
7. **Testing:** Instructions on how to run tests.
8. **Contact:** How users can reach the maintainers. Email: ` + ContactEmail + `, Project: ` + ContactLink + `.`

// Basic builds the fallback instruction string from a rendered content
// digest and a style.
func Basic(digest string, style Style) string {
	return fmt.Sprintf(`### Instruction:
Write a %s and well-structured README file for a software project.

%s

**Requirements:**
- Use the previous README.md to get the project name correct; if it doesn't exist, create an appropriate name.
- Exclude license information.
- Use clear headings and markdown formatting.
- Make the README engaging and easy to understand.
- Use bullet points, code blocks, and embedded links where appropriate.

### Project Analysis:
%s

### Response:
`, style.instruction(), sections, digest)
}

// LocalDirectory builds the instruction string for a local directory,
// optionally naming the project after the directory.
func LocalDirectory(digest string, style Style, projectName string) string {
	projectSection := ""
	if projectName != "" {
		projectSection = fmt.Sprintf("- **Project Name:** %s\n\n", projectName)
	}

	return fmt.Sprintf(`### Instruction:
Write a %s and well-structured README file for a local software project.

%s%s

**Requirements:**
- Create an appropriate project name based on the directory structure if not provided.
- Exclude license information.
- Use clear headings and markdown formatting.
- Focus on the actual functionality based on the code analysis.
- Use bullet points, code blocks, and embedded links where appropriate.

### Project Analysis:
%s

### Response:
`, style.instruction(), projectSection, sections, digest)
}

// Improvement builds an instruction string that asks the model to close
// the detected gaps in an existing README while preserving its shape.
func Improvement(existing string, improvements []string, style Style) string {
	improvementsText := "- General improvements needed"
	if len(improvements) > 0 {
		var b strings.Builder
		for i, imp := range improvements {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- %s", imp)
		}
		improvementsText = b.String()
	}

	return fmt.Sprintf(`### Instruction:
Improve the existing README file by addressing the following identified gaps.

### Current README:
%s

### Identified Improvements Needed:
%s

**Requirements:**
- Maintain the existing structure where appropriate.
- Add the missing sections identified above.
- Keep a %s tone.
- Preserve any existing badges, links, or formatting that works well.
- Contact: %s, Project: %s.

### Response:
`, existing, improvementsText, style.instruction(), ContactEmail, ContactLink)
}
