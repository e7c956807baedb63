// Package coverletter generates a template cover letter from a resume
// and a job posting. Generation is deterministic: signals extracted
// from both texts personalize the letter, and one of three tones shapes
// the opening, company, and closing paragraphs.
package coverletter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Tone selects the writing register of the generated letter.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneConfident    Tone = "confident"
)

// ParseTone validates a tone name from user input. An empty string
// means the professional default.
func ParseTone(s string) (Tone, error) {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case "", ToneProfessional:
		return ToneProfessional, nil
	case ToneEnthusiastic:
		return ToneEnthusiastic, nil
	case ToneConfident:
		return ToneConfident, nil
	}
	return "", fmt.Errorf("unknown tone %q (expected professional, enthusiastic, or confident)", s)
}

// Options carries the job details that personalize the letter. Empty
// fields fall back to generic phrasing.
type Options struct {
	Company       string
	JobTitle      string
	HiringManager string
	Tone          Tone
}

// Letter is the generated cover letter plus editing tips.
type Letter struct {
	Text      string   `json:"text"`
	Tone      Tone     `json:"tone"`
	WordCount int      `json:"word_count"`
	Tips      []string `json:"tips"`
}

const maxLetterSkills = 5

var (
	percentPattern = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	moneyPattern   = regexp.MustCompile(`(?i)\$[\d,]+[KMB]?`)
)

// Generate builds the letter from the raw resume and job texts. It
// never fails; missing signals degrade to generic phrasing.
func Generate(resumeText, jobText string, v *vocab.Vocabulary, opts Options) *Letter {
	tone := opts.Tone
	if tone == "" {
		tone = ToneProfessional
	}

	signals := resumeSignalsFrom(resumeText, v)
	responsibilities := jobResponsibilities(jobText)

	greeting := "Dear Hiring Manager,"
	if opts.HiringManager != "" {
		greeting = fmt.Sprintf("Dear %s,", opts.HiringManager)
	}
	company := opts.Company
	if company == "" {
		company = "your company"
	}
	position := opts.JobTitle
	if position == "" {
		position = "this position"
	}

	paragraphs := []string{
		greeting,
		openingParagraph(tone, position, company, signals.years),
		skillsParagraph(signals.skills, responsibilities),
		achievementsParagraph(signals.achievements, company),
		whyCompanyParagraph(tone, company, signals.skills, responsibilities),
		closingParagraph(tone, company),
		"Sincerely,\n[Your Name]\n[Your Email]\n[Your Phone]",
	}
	text := strings.Join(paragraphs, "\n\n")

	return &Letter{
		Text:      text,
		Tone:      tone,
		WordCount: len(strings.Fields(text)),
		Tips:      letterTips(),
	}
}

type resumeSignals struct {
	skills       []string
	years        string
	achievements []string
}

func resumeSignalsFrom(text string, v *vocab.Vocabulary) resumeSignals {
	profile := extraction.ExtractProfile(text, v)

	// Skills and technologies overlap in the vocabulary; keep the
	// first occurrence of each canonical name.
	seen := make(map[string]bool)
	var skills []string
	for _, s := range profile.Skills {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	for _, s := range profile.Technologies {
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}

	// Stated years personalize the opening; "3+" reads naturally when
	// the resume never says a number.
	years := "3+"
	if profile.ExperienceYears != nil {
		years = strconv.Itoa(*profile.ExperienceYears)
	}

	var achievements []string
	if m := percentPattern.FindString(text); m != "" {
		achievements = append(achievements, fmt.Sprintf("improved metrics by %s", m))
	}
	if m := moneyPattern.FindString(text); m != "" {
		achievements = append(achievements, fmt.Sprintf("delivered %s in value", m))
	}

	return resumeSignals{skills: skills, years: years, achievements: achievements}
}

var responsibilityRules = []struct {
	keywords []string
	phrase   string
}{
	{[]string{"develop", "build"}, "developing innovative solutions"},
	{[]string{"lead", "manage"}, "leading technical initiatives"},
	{[]string{"collaborate", "team"}, "cross-functional collaboration"},
	{[]string{"design", "architect"}, "system design and architecture"},
}

// jobResponsibilities maps posting verbs to the focus phrases woven
// into the skills and company paragraphs, in rule order.
func jobResponsibilities(jobText string) []string {
	lower := strings.ToLower(jobText)
	var phrases []string
	for _, rule := range responsibilityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				phrases = append(phrases, rule.phrase)
				break
			}
		}
	}
	return phrases
}

func openingParagraph(tone Tone, position, company, years string) string {
	switch tone {
	case ToneEnthusiastic:
		return fmt.Sprintf("I am thrilled to apply for the %s position at %s! When I discovered this opportunity, "+
			"I knew immediately that my background and passion align perfectly with what you're looking for.",
			position, company)
	case ToneConfident:
		return fmt.Sprintf("I am writing to express my strong interest in the %s role at %s. With %s years of proven "+
			"experience and a track record of delivering results, I am confident I would be a valuable addition to your team.",
			position, company, years)
	default:
		return fmt.Sprintf("I am writing to express my interest in the %s position at %s. With %s years of experience "+
			"in the field, I believe my skills and background make me an excellent candidate for this role.",
			position, company, years)
	}
}

func skillsParagraph(skills, responsibilities []string) string {
	list := "software development and problem-solving"
	if len(skills) > 0 {
		top := skills
		if len(top) > maxLetterSkills {
			top = top[:maxLetterSkills]
		}
		list = strings.Join(top, ", ")
	}

	focus := "I am eager to bring these skills to your team and contribute to meaningful projects."
	if len(responsibilities) > 0 {
		lead := responsibilities
		if len(lead) > 2 {
			lead = lead[:2]
		}
		focus = fmt.Sprintf("I am particularly excited about the opportunity to focus on %s.", strings.Join(lead, " and "))
	}

	return fmt.Sprintf("Throughout my career, I have developed strong expertise in %s. %s", list, focus)
}

func achievementsParagraph(achievements []string, company string) string {
	if len(achievements) > 0 {
		return fmt.Sprintf("In my previous roles, I have consistently delivered impactful results, including %s. "+
			"I am committed to bringing this same level of dedication and results-oriented approach to %s.",
			achievements[0], company)
	}
	return fmt.Sprintf("I have a proven track record of taking ownership of projects, collaborating effectively with "+
		"cross-functional teams, and delivering high-quality work on time. I am excited to bring this dedication to %s.",
		company)
}

func whyCompanyParagraph(tone Tone, company string, skills, responsibilities []string) string {
	field := "this field"
	if len(skills) > 0 {
		field = skills[0]
	}

	switch tone {
	case ToneEnthusiastic:
		passion := "making a real impact"
		if len(responsibilities) > 0 {
			passion = responsibilities[0]
		}
		return fmt.Sprintf("What excites me most about %s is the opportunity to work on challenging problems alongside "+
			"talented individuals. I am passionate about %s, and I believe this role would allow me to grow while "+
			"contributing meaningfully to your mission.", company, passion)
	case ToneConfident:
		return fmt.Sprintf("%s stands out to me as a leader in the industry, and I am eager to contribute to your "+
			"continued success. My experience in %s positions me well to hit the ground running and deliver value from day one.",
			company, field)
	default:
		return fmt.Sprintf("I am particularly drawn to %s because of your commitment to innovation and excellence. "+
			"I am confident that my background in %s would allow me to contribute effectively to your team's goals.",
			company, field)
	}
}

func closingParagraph(tone Tone, company string) string {
	switch tone {
	case ToneEnthusiastic:
		return fmt.Sprintf("I would love the opportunity to discuss how my background, skills, and enthusiasm can "+
			"contribute to %s's success. Thank you for considering my application, and I look forward to the possibility "+
			"of joining your team!", company)
	case ToneConfident:
		return fmt.Sprintf("I am confident that my skills and experience make me an ideal candidate for this role. "+
			"I welcome the opportunity to discuss how I can contribute to %s's objectives. Thank you for your consideration.",
			company)
	default:
		return "I would welcome the opportunity to discuss how my qualifications align with your needs. " +
			"Thank you for considering my application. I look forward to hearing from you."
	}
}

func letterTips() []string {
	return []string{
		"Replace [Your Name], [Your Email], [Your Phone] with your actual contact info",
		"Customize the opening paragraph to mention something specific about the company",
		"Add specific metrics or achievements from your experience",
		"Keep it to one page (300-400 words is ideal)",
	}
}
