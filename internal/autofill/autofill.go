// Package autofill extracts application-form profile data from resume
// text with regex heuristics. The output is a best-effort fill: missing
// fields stay empty and the confidence score reports how much was found.
package autofill

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// PersonalInfo holds the candidate's name fields.
type PersonalInfo struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`
}

// ContactInfo holds reachable contact fields.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is one detected employment entry.
type Experience struct {
	Title     string `json:"title"`
	Company   string `json:"company,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Education is one detected education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	School         string `json:"school,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// Profile is the structured autofill payload.
type Profile struct {
	Personal        PersonalInfo `json:"personal"`
	Contact         ContactInfo  `json:"contact"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
	Skills          []string     `json:"skills"`
	ExtractedFields []string     `json:"extracted_fields"`
	Confidence      int          `json:"confidence"`
}

var (
	fullNamePattern = regexp.MustCompile(`(?m)^\s*([A-Z][a-z]+)\s+([A-Z][a-z]+)\s*$`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[a-zA-Z0-9-]+`)
	websitePattern  = regexp.MustCompile(`https?://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\S*`)

	jobTitlePattern = regexp.MustCompile(`(?i)\b(?:(?:Software|Senior|Junior|Staff|Lead|Principal)\s+(?:Engineer|Developer|Programmer)|(?:Full\s*Stack|Frontend|Backend|Web)\s+Developer|(?:Product|Project)\s+Manager|(?:Data|Business)\s+Analyst)\b`)
	companyPattern  = regexp.MustCompile(`(?:at|@)\s+([A-Z][a-zA-Z&. ]+?(?:Inc|LLC|Corp|Company|Ltd)?)\s*(?:$|[,.;])`)
	datesPattern    = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|Present)`)

	degreePattern = regexp.MustCompile(`(?i)\b(?:(?:Bachelor|Master|Doctorate)\s+(?:of\s+)?(?:Science|Arts|Engineering|Business)|PhD|MBA|BS|BA|MS|MA)\b`)
	schoolPattern = regexp.MustCompile(`(?:University|College|Institute)\s+(?:of\s+)?[A-Z][a-zA-Z ]+|[A-Z][a-zA-Z ]+(?:University|College|Institute)`)
	yearPattern   = regexp.MustCompile(`\b(\d{4})\b`)
)

const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
)

// ExtractProfile builds an autofill profile from raw resume text.
func ExtractProfile(resumeText string, v *vocab.Vocabulary) *Profile {
	if v == nil {
		v = vocab.MustDefault()
	}

	profile := &Profile{
		Personal:   extractPersonal(resumeText),
		Contact:    extractContact(resumeText),
		Experience: extractExperience(resumeText),
		Education:  extractEducation(resumeText),
		Skills:     extractSkills(resumeText, v),
	}
	profile.ExtractedFields = fieldList(profile)
	profile.Confidence = confidence(profile)
	return profile
}

func extractPersonal(text string) PersonalInfo {
	match := fullNamePattern.FindStringSubmatch(text)
	if match == nil {
		return PersonalInfo{}
	}
	return PersonalInfo{
		FirstName: match[1],
		LastName:  match[2],
		FullName:  match[1] + " " + match[2],
	}
}

func extractContact(text string) ContactInfo {
	contact := ContactInfo{
		Email:    emailPattern.FindString(text),
		Phone:    strings.TrimSpace(phonePattern.FindString(text)),
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}
	// The generic URL pattern would also match profile links.
	for _, candidate := range websitePattern.FindAllString(text, -1) {
		if strings.Contains(candidate, "linkedin.com") || strings.Contains(candidate, "github.com") {
			continue
		}
		contact.Website = candidate
		break
	}
	return contact
}

func extractExperience(text string) []Experience {
	var entries []Experience
	var current *Experience

	for _, line := range strings.Split(text, "\n") {
		if title := jobTitlePattern.FindString(line); title != "" {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Experience{Title: title}
		}
		if current == nil {
			continue
		}
		if match := companyPattern.FindStringSubmatch(line); match != nil && current.Company == "" {
			current.Company = strings.TrimSpace(match[1])
		}
		if match := datesPattern.FindStringSubmatch(line); match != nil && current.StartDate == "" {
			current.StartDate = match[1]
			current.EndDate = match[2]
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

func extractEducation(text string) []Education {
	var entries []Education
	for _, line := range strings.Split(text, "\n") {
		entry := Education{
			Degree: degreePattern.FindString(line),
			School: strings.TrimSpace(schoolPattern.FindString(line)),
		}
		if entry.Degree == "" && entry.School == "" {
			continue
		}
		if match := yearPattern.FindStringSubmatch(line); match != nil {
			entry.GraduationYear = match[1]
		}
		entries = append(entries, entry)
		if len(entries) == maxEducationEntries {
			break
		}
	}
	return entries
}

func extractSkills(text string, v *vocab.Vocabulary) []string {
	lower := strings.ToLower(text)
	terms := make([]string, 0, len(v.Skills)+len(v.Technologies))
	terms = append(terms, v.Skills...)
	terms = append(terms, v.Technologies...)

	seen := make(map[string]bool, len(terms))
	var found []string
	for _, term := range terms {
		if seen[term] || !strings.Contains(lower, term) {
			continue
		}
		seen[term] = true
		found = append(found, term)
	}
	return found
}

func fieldList(p *Profile) []string {
	var fields []string
	if p.Personal.FirstName != "" {
		fields = append(fields, "personal.first_name")
	}
	if p.Personal.LastName != "" {
		fields = append(fields, "personal.last_name")
	}
	if p.Contact.Email != "" {
		fields = append(fields, "contact.email")
	}
	if p.Contact.Phone != "" {
		fields = append(fields, "contact.phone")
	}
	if p.Contact.LinkedIn != "" {
		fields = append(fields, "contact.linkedin")
	}
	if p.Contact.GitHub != "" {
		fields = append(fields, "contact.github")
	}
	if p.Contact.Website != "" {
		fields = append(fields, "contact.website")
	}
	if len(p.Experience) > 0 {
		fields = append(fields, "experience")
	}
	if len(p.Education) > 0 {
		fields = append(fields, "education")
	}
	if len(p.Skills) > 0 {
		fields = append(fields, "skills")
	}
	return fields
}

// confidence weights: name 20, contact 30, experience 25, education 15,
// skills 10.
func confidence(p *Profile) int {
	score := 0.0
	if p.Personal.FirstName != "" {
		score += 10
	}
	if p.Personal.LastName != "" {
		score += 10
	}
	if p.Contact.Email != "" {
		score += 15
	}
	if p.Contact.Phone != "" {
		score += 10
	}
	if p.Contact.LinkedIn != "" || p.Contact.GitHub != "" {
		score += 5
	}
	score += minFloat(25, float64(len(p.Experience))*8)
	score += minFloat(15, float64(len(p.Education))*7)
	score += minFloat(10, float64(len(p.Skills))*0.5)
	return int(score + 0.5)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
