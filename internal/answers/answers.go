// Package answers generates template answers for common application
// questions. Answers are deterministic and are personalized with the
// matched and missing skills from a completed match evaluation.
package answers

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// QuestionAnswer pairs an application question with its generated answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Result holds generated answers plus general application tips.
type Result struct {
	Answers []QuestionAnswer `json:"answers"`
	Tips    []string         `json:"tips"`
}

const maxPersonalizedSkills = 3

// Generate produces an answer for each question. The match result and
// resume profile may be nil; generic phrasing is used in that case.
func Generate(questions []string, match *types.MatchResult, resume *types.ExtractedProfile) *Result {
	result := &Result{Answers: make([]QuestionAnswer, 0, len(questions))}
	for _, question := range questions {
		result.Answers = append(result.Answers, QuestionAnswer{
			Question: question,
			Answer:   answerFor(question, match, resume),
		})
	}
	result.Tips = generateTips(match)
	return result
}

func answerFor(question string, match *types.MatchResult, resume *types.ExtractedProfile) string {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "why are you interested"), strings.Contains(lower, "why do you want"):
		return interestAnswer(match)
	case strings.Contains(lower, "good fit"), strings.Contains(lower, "qualified"):
		return fitAnswer(match)
	case strings.Contains(lower, "strength"), strings.Contains(lower, "skills"):
		return strengthAnswer(match)
	case strings.Contains(lower, "experience"), strings.Contains(lower, "background"):
		return experienceAnswer(resume)
	default:
		return genericAnswer()
	}
}

func interestAnswer(match *types.MatchResult) string {
	skills := topMatchedSkills(match, maxPersonalizedSkills, "relevant skills")
	return fmt.Sprintf("I'm excited about this opportunity because it aligns with my technical expertise in %s. "+
		"The role offers the chance to apply my skills in a meaningful way while contributing to innovative projects. "+
		"I'm particularly drawn to the growth and collaboration described in the job posting.",
		strings.Join(skills, ", "))
}

func fitAnswer(match *types.MatchResult) string {
	if match != nil && len(match.MatchedSkills) > 0 {
		skills := topMatchedSkills(match, maxPersonalizedSkills, "")
		return fmt.Sprintf("I believe I'm an excellent fit for this role because of my strong background in %s. "+
			"My experience directly aligns with the key requirements, and I have a proven track record of delivering "+
			"results in similar environments. I'm confident I can contribute immediately while continuing to grow with the team.",
			strings.Join(skills, ", "))
	}
	return "I'm a strong fit for this role because I bring a combination of technical skills, problem-solving " +
		"abilities, and a collaborative mindset. While I continue to develop in some areas, my core competencies " +
		"align well with what you're looking for, and I'm eager to contribute to the team's success."
}

func strengthAnswer(match *types.MatchResult) string {
	lead := "technical skills"
	if match != nil && len(match.MatchedSkills) > 0 {
		lead = match.MatchedSkills[0]
	}
	return fmt.Sprintf("My greatest strength is my ability to combine %s with strong problem-solving capabilities. "+
		"I excel at breaking down complex challenges into manageable components and finding efficient solutions. "+
		"I'm also a strong communicator who works effectively both independently and as part of a team.", lead)
}

func experienceAnswer(resume *types.ExtractedProfile) string {
	years := "several"
	if resume != nil && resume.ExperienceYears != nil && *resume.ExperienceYears > 0 {
		years = fmt.Sprintf("%d", *resume.ExperienceYears)
	}
	return fmt.Sprintf("Throughout my %s years of professional experience, I've developed a strong foundation in "+
		"software development and problem-solving. I've worked on diverse projects that have strengthened my "+
		"technical skills and taught me the value of collaboration, continuous learning, and delivering solutions "+
		"that meet user needs.", years)
}

func genericAnswer() string {
	return "Thank you for this question. Based on my background and experience, I believe I can bring valuable " +
		"skills and perspective to this role. I'm committed to continuous learning and contributing positively to " +
		"the team while delivering high-quality results that align with the company's goals."
}

func generateTips(match *types.MatchResult) []string {
	tips := []string{
		"Customize each answer to reflect the specific company and role",
		"Use specific examples from your experience when possible",
		"Keep answers concise but comprehensive (2-3 minutes when spoken)",
	}

	if match == nil {
		return tips
	}
	if match.OverallScore < 70 {
		tips = append(tips, "Consider highlighting relevant projects or coursework to strengthen your candidacy")
	}
	if len(match.MissingSkills) > 0 {
		missing := match.MissingSkills
		if len(missing) > 2 {
			missing = missing[:2]
		}
		tips = append(tips, fmt.Sprintf("Be prepared to discuss how you'd learn: %s", strings.Join(missing, ", ")))
	}
	return tips
}

func topMatchedSkills(match *types.MatchResult, limit int, fallback string) []string {
	if match == nil || len(match.MatchedSkills) == 0 {
		if fallback == "" {
			return nil
		}
		return []string{fallback}
	}
	skills := match.MatchedSkills
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}
