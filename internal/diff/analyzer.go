// Package diff compares an existing README against a newly generated
// one: a unified line diff, a similarity ratio, and a set of heuristic
// improvement labels.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Report describes how a generated document compares to an existing
// one. Similarity is in [0, 1]; 1 means identical.
type Report struct {
	Unified      string   `json:"unified"`
	Improvements []string `json:"improvements,omitempty"`
	Similarity   float64  `json:"similarity"`
}

// sectionKeywords drive the Added/Enhanced labels: a section counts as
// present when its keyword appears anywhere in the text,
// case-insensitively.
var sectionKeywords = []struct {
	label   string
	keyword string
}{
	{"Installation", "install"},
	{"Usage", "usage"},
	{"Contributing", "contribut"},
	{"Testing", "test"},
	{"License", "license"},
	{"Contact", "contact"},
}

// Analyze produces a Report for the transition existing → generated.
func Analyze(existing, generated string) Report {
	a := difflib.SplitLines(existing)
	b := difflib.SplitLines(generated)

	unified, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "existing/README.md",
		ToFile:   "generated/README.md",
		Context:  3,
	})

	return Report{
		Unified:      unified,
		Improvements: improvements(existing, generated),
		Similarity:   difflib.NewMatcher(a, b).Ratio(),
	}
}

func improvements(existing, generated string) []string {
	lowerOld := strings.ToLower(existing)
	lowerNew := strings.ToLower(generated)

	var labels []string
	for _, section := range sectionKeywords {
		inOld := strings.Contains(lowerOld, section.keyword)
		inNew := strings.Contains(lowerNew, section.keyword)
		switch {
		case !inOld && inNew:
			labels = append(labels, "Added "+section.label)
		case inOld && inNew:
			labels = append(labels, "Enhanced "+section.label)
		}
	}

	if hasAny(lowerNew, "![", "img.shields.io") && !hasAny(lowerOld, "![", "img.shields.io") {
		labels = append(labels, "Added badges or images")
	}
	if strings.Contains(generated, "```") && !strings.Contains(existing, "```") {
		labels = append(labels, "Added code examples")
	}
	if strings.Contains(lowerNew, "table of contents") && !strings.Contains(lowerOld, "table of contents") {
		labels = append(labels, "Added table of contents")
	}

	return labels
}

func hasAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
