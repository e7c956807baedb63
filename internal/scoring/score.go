// Package scoring computes the deterministic match score between a resume
// profile and a job profile. Four weighted dimensions feed the overall
// score; every dimension degrades to a neutral 50 when its inputs are
// absent, so scoring is total over arbitrary input.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Dimension weights. They sum to 1.0 so a uniform profile maps onto the
// same overall value.
const (
	weightSkill      = 0.40
	weightExperience = 0.30
	weightEducation  = 0.15
	weightKeyword    = 0.15
)

const neutralScore = 50

// Score compares the two extracted profiles plus the raw texts (keyword
// density needs the full documents, not just the profiles). It never
// fails and always returns a breakdown with all four dimensions.
func Score(resume, job *types.ExtractedProfile, resumeText, jobText string, v *vocab.Vocabulary) *types.ScoreBreakdown {
	resumeNorm := extraction.Normalize(resumeText)
	jobNorm := extraction.Normalize(jobText)

	skill := scoreSkills(resume.Skills, job.Skills)
	experience := scoreExperience(resume.ExperienceYears, job.ExperienceYears)
	education := scoreEducation(len(resume.Education), len(job.Education))
	keyword := scoreKeywords(resumeNorm, jobNorm, v)

	overall := float64(skill.score.Value)*weightSkill +
		float64(experience.Value)*weightExperience +
		float64(education.Value)*weightEducation +
		float64(keyword.Value)*weightKeyword

	return &types.ScoreBreakdown{
		Overall:       clamp(int(math.Round(overall))),
		SubScores:     []types.SubScore{skill.score, experience, education, keyword},
		MatchedSkills: skill.matched,
		MissingSkills: skill.missing,
		Resume:        resume,
		Job:           job,
	}
}

type skillResult struct {
	score   types.SubScore
	matched []string
	missing []string
}

// scoreSkills measures coverage of the job's skill list. Matching is on
// canonical names, so matched and missing never overlap.
func scoreSkills(resumeSkills, jobSkills []string) skillResult {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[s] = true
	}

	matched := []string{}
	missing := []string{}
	for _, s := range jobSkills {
		if resumeSet[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	value := neutralScore
	evidence := "no skills detected in job posting"
	if len(jobSkills) > 0 {
		value = roundRatio(len(matched), len(jobSkills))
		evidence = fmt.Sprintf("%d of %d required skills present", len(matched), len(jobSkills))
	}

	return skillResult{
		score:   types.SubScore{Name: types.DimensionSkill, Value: value, Evidence: evidence},
		matched: matched,
		missing: missing,
	}
}

// scoreExperience compares stated years of experience. The ladder is
// deliberately coarse: meeting the requirement is 100, within 80% is 80,
// within 60% is 60, anything less is 30.
func scoreExperience(resumeYears, requiredYears *int) types.SubScore {
	resume := yearsOrZero(resumeYears)
	required := yearsOrZero(requiredYears)

	value := neutralScore
	switch {
	case required > 0 && resume >= required:
		value = 100
	case required > 0 && float64(resume) >= float64(required)*0.8:
		value = 80
	case required > 0 && float64(resume) >= float64(required)*0.6:
		value = 60
	case required > 0:
		value = 30
	case resume > 0:
		value = 70
	}

	evidence := "no stated experience on either side"
	if required > 0 {
		evidence = fmt.Sprintf("resume states %d years, job asks for %d", resume, required)
	} else if resume > 0 {
		evidence = fmt.Sprintf("resume states %d years, job requirement unclear", resume)
	}

	return types.SubScore{Name: types.DimensionExperience, Value: value, Evidence: evidence}
}

// scoreEducation compares counts of education signals. A resume with
// signals against a silent posting floors at 80 rather than being
// penalized for the posting's omission.
func scoreEducation(resumeSignals, jobSignals int) types.SubScore {
	value := neutralScore
	evidence := "no education signals on either side"
	switch {
	case jobSignals > 0:
		ratio := roundRatio(resumeSignals, jobSignals)
		if ratio > 100 {
			ratio = 100
		}
		value = ratio
		evidence = fmt.Sprintf("%d education signals against %d required", resumeSignals, jobSignals)
	case resumeSignals > 0:
		value = 80
		evidence = fmt.Sprintf("%d education signals, none required", resumeSignals)
	}

	return types.SubScore{Name: types.DimensionEducation, Value: value, Evidence: evidence}
}

// scoreKeywords measures how many of the job posting's top content words
// appear anywhere in the resume.
func scoreKeywords(resumeNorm, jobNorm string, v *vocab.Vocabulary) types.SubScore {
	keywords := ContentWords(jobNorm, v)
	if len(keywords) == 0 {
		return types.SubScore{
			Name:     types.DimensionKeyword,
			Value:    neutralScore,
			Evidence: "no content words in job posting",
		}
	}

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeNorm, keyword) {
			matches++
		}
	}

	return types.SubScore{
		Name:     types.DimensionKeyword,
		Value:    roundRatio(matches, len(keywords)),
		Evidence: fmt.Sprintf("%d of %d top job keywords found", matches, len(keywords)),
	}
}

func yearsOrZero(years *int) int {
	if years == nil {
		return 0
	}
	return *years
}

func roundRatio(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func clamp(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
