// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchInput carries the two raw documents to be compared
type MatchInput struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// MatchOptions controls optional behavior of a match evaluation
type MatchOptions struct {
	UseExternalModel bool `json:"use_external_model"`
	// TimeoutSeconds bounds the external model call, not the local path.
	TimeoutSeconds int  `json:"timeout_seconds" validate:"gte=0,lte=120"`
	MaxWorkers     int  `json:"max_workers" validate:"gte=0,lte=64"`
	Verbose        bool `json:"verbose"`
}

// ExtractedProfile is the structured view of one document after extraction
type ExtractedProfile struct {
	Skills          []string `json:"skills"`
	Technologies    []string `json:"technologies"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	ExperienceLevel string   `json:"experience_level"` // entry, mid, senior, lead, or unknown
	Education       []string `json:"education"`
	Achievements    []string `json:"achievements"`
}

// SubScore dimension names
const (
	DimensionSkill      = "skill"
	DimensionExperience = "experience"
	DimensionEducation  = "education"
	DimensionKeyword    = "keyword"
)

// SubScore is one scored dimension with the evidence behind it
type SubScore struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Evidence string `json:"evidence,omitempty"`
}

// ScoreBreakdown holds the per-dimension results that feed the overall score
type ScoreBreakdown struct {
	Overall       int               `json:"overall"`
	SubScores     []SubScore        `json:"sub_scores"`
	MatchedSkills []string          `json:"matched_skills"`
	MissingSkills []string          `json:"missing_skills"`
	Resume        *ExtractedProfile `json:"resume,omitempty"`
	Job           *ExtractedProfile `json:"job,omitempty"`
}

// SubScore returns the value of the named dimension, or 0 if absent
func (b *ScoreBreakdown) SubScore(name string) int {
	for _, s := range b.SubScores {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

// MatchResult is the final product of a match evaluation
type MatchResult struct {
	OverallScore    int        `json:"overall_score"`
	ReadinessLevel  string     `json:"readiness_level"`
	SubScores       []SubScore `json:"sub_scores"`
	MatchedSkills   []string   `json:"matched_skills"`
	MissingSkills   []string   `json:"missing_skills"`
	Recommendations []string   `json:"recommendations"`
	Strengths       []string   `json:"strengths,omitempty"`
	Gaps            []string   `json:"gaps,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	Degraded        bool       `json:"degraded,omitempty"`
	DegradedReason  string     `json:"degraded_reason,omitempty"`
}
