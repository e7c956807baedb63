// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/autofill"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match evaluation.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d / 100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Readiness: %s\n", result.ReadinessLevel))
	if result.Degraded {
		sb.WriteString(fmt.Sprintf("Degraded:  %s\n", result.DegradedReason))
	}
	sb.WriteString("\n")

	if len(result.SubScores) > 0 {
		sb.WriteString("Dimensions:\n")
		for _, sub := range result.SubScores {
			sb.WriteString(fmt.Sprintf("  %-12s %3d\n", sub.Name, sub.Value))
		}
		sb.WriteString("\n")
	}

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", joinTruncated(result.MatchedSkills, 45)))
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", joinTruncated(result.MissingSkills, 45)))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(result.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs the structured view extracted from one document.
func (p *Printer) PrintProfile(title string, profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:       %s\n", joinTruncated(profile.Skills, 40)))
	}
	if len(profile.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("Technologies: %s\n", joinTruncated(profile.Technologies, 40)))
	}
	if profile.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience:   %d years (%s)\n", *profile.ExperienceYears, profile.ExperienceLevel))
	} else {
		sb.WriteString(fmt.Sprintf("Experience:   %s\n", profile.ExperienceLevel))
	}
	if len(profile.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education:    %s\n", joinTruncated(profile.Education, 40)))
	}
	if len(profile.Achievements) > 0 {
		sb.WriteString("Achievements:\n")
		count := min(len(profile.Achievements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Achievements[i]))
		}
		if len(profile.Achievements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Achievements)-3))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAutofillProfile outputs the form-fill view extracted from a resume.
func (p *Printer) PrintAutofillProfile(profile *autofill.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	name := strings.TrimSpace(profile.Personal.FirstName + " " + profile.Personal.LastName)
	if name != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", name))
	}
	if profile.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", profile.Contact.Email))
	}
	if profile.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", profile.Contact.Phone))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(profile.Education)))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s\n", joinTruncated(profile.Skills, 40)))
	}
	sb.WriteString(fmt.Sprintf("Fields:     %d\n", len(profile.ExtractedFields)))
	sb.WriteString(fmt.Sprintf("Confidence: %d / 100", profile.Confidence))

	p.printBox("EXTRACTED PROFILE", sb.String())
}

// PrintBatch outputs the ranked results of a batch run.
func (p *Printer) PrintBatch(batch *engine.BatchResult) {
	if batch == nil || len(batch.Items) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:     %s\n", batch.RunID))
	sb.WriteString(fmt.Sprintf("Resumes: %d\n\n", len(batch.Items)))

	count := min(len(batch.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := batch.Items[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, item.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", item.Result.OverallScore, item.Result.ReadinessLevel))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(batch.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(batch.Items)-maxItemsToShow))
	}

	p.printBox("BATCH RANKING", sb.String())
}

// PrintATSReport outputs the findings of an ATS simulation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintATSReport(report *ats.Report) {
	if report == nil {
		return
	}

	if len(report.Issues) == 0 && len(report.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ ATS SCORE %d, NO ISSUES FOUND", report.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d / 100\n\n", report.Score))

	for _, issue := range report.Issues {
		details := issue.Description
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("✗ %s\n", issue.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
	}
	for _, warning := range report.Warnings {
		details := warning.Description
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warning.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
	}
	for _, passed := range report.Passed {
		sb.WriteString(fmt.Sprintf("✓ %s\n", passed.Title))
	}

	p.printBox("ATS SIMULATION", strings.TrimSuffix(sb.String(), "\n"))
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
