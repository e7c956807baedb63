// Package recommend turns a score breakdown into actionable guidance for
// the candidate. Rules run in a fixed order so identical breakdowns
// always produce identical recommendation lists.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const maxHighlightedSkills = 3

// Readiness level bands
const (
	LevelExcellent = "Excellent Match"
	LevelGood      = "Good Match"
	LevelFair      = "Fair Match"
	LevelLow       = "Low Match"
)

// Generate produces the recommendation list for a breakdown. Order is
// fixed: tailoring advice, missing skills, matched skills, experience
// gap, affirmation.
func Generate(b *types.ScoreBreakdown) []string {
	recommendations := []string{}

	if b.Overall < 60 {
		recommendations = append(recommendations,
			"Consider tailoring your resume more closely to this job posting")
	}

	if len(b.MissingSkills) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider highlighting these missing skills if you have them: %s",
			strings.Join(topSkills(b.MissingSkills), ", ")))
	}

	if len(b.MatchedSkills) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Great match on these skills: %s - make sure they're prominent",
			strings.Join(topSkills(b.MatchedSkills), ", ")))
	}

	if hasExperienceGap(b) {
		recommendations = append(recommendations,
			"Emphasize relevant projects and accomplishments to compensate for experience gap")
	}

	if b.Overall >= 80 {
		recommendations = append(recommendations,
			"Excellent match! Your resume aligns well with this job posting")
	}

	return recommendations
}

// ReadinessLevel maps an overall score onto a coarse readiness band.
func ReadinessLevel(score int) string {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelLow
	}
}

func topSkills(skills []string) []string {
	if len(skills) > maxHighlightedSkills {
		return skills[:maxHighlightedSkills]
	}
	return skills
}

// hasExperienceGap reports whether the resume falls short of the job's
// stated years requirement.
func hasExperienceGap(b *types.ScoreBreakdown) bool {
	if b.Resume == nil || b.Job == nil || b.Job.ExperienceYears == nil {
		return false
	}
	resumeYears := 0
	if b.Resume.ExperienceYears != nil {
		resumeYears = *b.Resume.ExperienceYears
	}
	return resumeYears < *b.Job.ExperienceYears
}
