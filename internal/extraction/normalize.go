// Package extraction turns raw resume and job-posting text into the
// structured profiles the scorer compares. Extraction is heuristic and
// total: malformed or empty input yields an empty profile, never an error.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

var (
	spaceRunPattern = regexp.MustCompile(`[ \t]+`)
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

// Normalize lowercases text and collapses whitespace noise while keeping
// line structure intact. Normalizing twice gives the same result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	normalized := strings.ToLower(text)
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = spaceRunPattern.ReplaceAllString(normalized, " ")

	lines := strings.Split(normalized, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	normalized = strings.Join(lines, "\n")
	normalized = blankRunPattern.ReplaceAllString(normalized, "\n\n")

	return strings.TrimSpace(normalized)
}

// NormalizeSkillName resolves a skill variant to its canonical vocabulary
// form, e.g. "K8s" -> "kubernetes".
func NormalizeSkillName(name string, v *vocab.Vocabulary) string {
	if name == "" {
		return ""
	}
	return v.Canonical(name)
}
