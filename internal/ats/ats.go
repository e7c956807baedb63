// Package ats simulates how applicant tracking systems parse a resume.
// It runs formatting checks against the raw resume text, optionally scores
// keyword coverage against a job description, and renders the text the way
// a parser would see it.
package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Severity classifies a check outcome.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Finding is a single check outcome with a human-readable explanation.
type Finding struct {
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// KeywordAnalysis reports keyword coverage against a job description.
type KeywordAnalysis struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"`
	Total   int      `json:"total"`
}

// Section reports whether a standard resume section was detected.
type Section struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
}

// Report is the full result of an ATS simulation.
type Report struct {
	Score         int              `json:"score"`
	Issues        []Finding        `json:"issues"`
	Warnings      []Finding        `json:"warnings"`
	Passed        []Finding        `json:"passed"`
	Keywords      *KeywordAnalysis `json:"keywords,omitempty"`
	Sections      []Section        `json:"sections"`
	ExtractedText string           `json:"extracted_text"`
}

var (
	tabColumnPattern  = regexp.MustCompile(`\t.*\t`)
	imageRefPattern   = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|svg|bmp)`)
	specialBulletSet  = "•●○◆★☆►▪"
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	emailPattern      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern      = regexp.MustCompile(`[\d\s()+-]{10,}`)
	markdownEmphasis  = regexp.MustCompile("[_*~`]")
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	commonSectionList = []string{"experience", "education", "skills", "projects", "work", "summary"}
)

// sectionIndicators maps each reported section to the phrases that reveal it.
var sectionIndicators = map[string][]string{
	"Contact":        {"email", "phone", "address", "linkedin", "github"},
	"Summary":        {"summary", "objective", "about", "profile"},
	"Experience":     {"experience", "work history", "employment", "work experience"},
	"Education":      {"education", "academic", "degree", "university", "college"},
	"Skills":         {"skills", "technologies", "technical skills", "competencies"},
	"Projects":       {"projects", "portfolio", "personal projects"},
	"Certifications": {"certifications", "certificates", "licenses"},
}

// sectionOrder keeps Report.Sections deterministic.
var sectionOrder = []string{"Contact", "Summary", "Experience", "Education", "Skills", "Projects", "Certifications"}

const (
	issuePenalty   = 15
	warningPenalty = 5
	passedBonus    = 5
	maxPassedBonus = 20
	neutralKeyword = 75
)

// Analyze runs the ATS simulation. jobText may be empty; keyword analysis
// is skipped and the score is purely structural in that case.
func Analyze(resumeText, jobText string, v *vocab.Vocabulary) *Report {
	if v == nil {
		v = vocab.MustDefault()
	}

	report := &Report{}
	runChecks(resumeText, report)
	report.Sections = detectSections(resumeText)
	report.ExtractedText = SimulateExtraction(resumeText)

	score := 100 - issuePenalty*len(report.Issues) - warningPenalty*len(report.Warnings)
	bonus := passedBonus * len(report.Passed)
	if bonus > maxPassedBonus {
		bonus = maxPassedBonus
	}
	score += bonus
	score = clamp(score)

	if strings.TrimSpace(jobText) != "" {
		report.Keywords = analyzeKeywords(resumeText, jobText, v)
		blended := float64(score)*0.6 + float64(report.Keywords.Score)*0.4
		score = clamp(int(blended + 0.5))
	}

	report.Score = score
	return report
}

func runChecks(text string, report *Report) {
	// Tables break most parsers; pipes and repeated tabs are the usual tell.
	if strings.Contains(text, "|") || len(tabColumnPattern.FindAllString(text, -1)) > 3 {
		report.Issues = append(report.Issues, Finding{
			Severity:    SeverityError,
			Title:       "Table Detected",
			Description: "Tables often break ATS parsing. Content in tables may not be read correctly.",
		})
	} else {
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "No Tables",
			Description: "Your resume appears to avoid problematic table layouts.",
		})
	}

	lines := strings.Split(text, "\n")
	multiColumn := 0
	for _, line := range lines {
		if strings.Contains(line, "   ") && len(strings.TrimSpace(line)) > 50 {
			multiColumn++
		}
	}
	if multiColumn > 5 {
		report.Issues = append(report.Issues, Finding{
			Severity:    SeverityError,
			Title:       "Multi-Column Layout Detected",
			Description: "Two-column layouts can cause text to merge incorrectly in ATS systems.",
		})
	} else {
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "Single Column Layout",
			Description: "Your resume uses a single-column format that parses well.",
		})
	}

	if imageRefPattern.MatchString(text) {
		report.Warnings = append(report.Warnings, Finding{
			Severity:    SeverityWarning,
			Title:       "Image References Found",
			Description: "Images and graphics are not readable by ATS. Ensure key info is in text.",
		})
	}

	specialCount := 0
	for _, r := range text {
		if strings.ContainsRune(specialBulletSet, r) {
			specialCount++
		}
	}
	if specialCount > 0 {
		report.Warnings = append(report.Warnings, Finding{
			Severity:    SeverityWarning,
			Title:       "Special Bullet Characters",
			Description: fmt.Sprintf("Found %d special characters. Some ATS may not parse these correctly.", specialCount),
		})
	} else {
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "Standard Characters",
			Description: "Using standard characters that parse reliably.",
		})
	}

	if urls := urlPattern.FindAllString(text, -1); len(urls) > 0 {
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "Links Included",
			Description: fmt.Sprintf("Found %d URL(s). LinkedIn/GitHub links are often valued.", len(urls)),
		})
	}

	hasEmail := emailPattern.MatchString(text)
	hasPhone := phonePattern.MatchString(text)
	switch {
	case hasEmail && hasPhone:
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "Contact Info Detected",
			Description: "Email and phone number were successfully parsed.",
		})
	case !hasEmail:
		report.Issues = append(report.Issues, Finding{
			Severity:    SeverityError,
			Title:       "No Email Found",
			Description: "ATS could not detect an email address. Ensure it's in plain text.",
		})
	default:
		report.Warnings = append(report.Warnings, Finding{
			Severity:    SeverityWarning,
			Title:       "No Phone Found",
			Description: "Phone number not detected. Consider adding it in a standard format.",
		})
	}

	lower := strings.ToLower(text)
	var foundSections []string
	for _, section := range commonSectionList {
		if strings.Contains(lower, section) {
			foundSections = append(foundSections, section)
		}
	}
	if len(foundSections) >= 3 {
		report.Passed = append(report.Passed, Finding{
			Severity:    SeveritySuccess,
			Title:       "Clear Section Headers",
			Description: fmt.Sprintf("Detected %d standard sections: %s.", len(foundSections), strings.Join(foundSections, ", ")),
		})
	} else {
		report.Warnings = append(report.Warnings, Finding{
			Severity:    SeverityWarning,
			Title:       "Limited Section Headers",
			Description: `Consider using standard headers like "Experience", "Education", "Skills".`,
		})
	}
}

// analyzeKeywords scores vocabulary keyword coverage against the job text.
func analyzeKeywords(resumeText, jobText string, v *vocab.Vocabulary) *KeywordAnalysis {
	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobText)

	terms := make([]string, 0, len(v.Skills)+len(v.Technologies))
	terms = append(terms, v.Skills...)
	terms = append(terms, v.Technologies...)

	seen := make(map[string]bool, len(terms))
	analysis := &KeywordAnalysis{Matched: []string{}, Missing: []string{}}
	for _, term := range terms {
		if seen[term] || !strings.Contains(jobLower, term) {
			continue
		}
		seen[term] = true
		analysis.Total++
		if strings.Contains(resumeLower, term) {
			analysis.Matched = append(analysis.Matched, term)
		} else {
			analysis.Missing = append(analysis.Missing, term)
		}
	}

	if analysis.Total == 0 {
		analysis.Score = neutralKeyword
		return analysis
	}
	analysis.Score = int(float64(len(analysis.Matched))/float64(analysis.Total)*100 + 0.5)
	return analysis
}

func detectSections(text string) []Section {
	lower := strings.ToLower(text)
	sections := make([]Section, 0, len(sectionOrder))
	for _, name := range sectionOrder {
		found := false
		for _, indicator := range sectionIndicators[name] {
			if strings.Contains(lower, indicator) {
				found = true
				break
			}
		}
		sections = append(sections, Section{Name: name, Found: found})
	}
	return sections
}

// SimulateExtraction renders the resume the way a naive parser reads it:
// whitespace collapsed, decorative bullets flattened, markdown emphasis
// stripped.
func SimulateExtraction(text string) string {
	extracted := whitespaceRuns.ReplaceAllString(text, " ")
	var sb strings.Builder
	sb.Grow(len(extracted))
	for _, r := range extracted {
		if strings.ContainsRune(specialBulletSet, r) {
			sb.WriteRune('-')
			continue
		}
		sb.WriteRune(r)
	}
	extracted = markdownEmphasis.ReplaceAllString(sb.String(), "")
	return strings.TrimSpace(extracted)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
