package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func intPtr(v int) *int { return &v }

func TestGenerate_LowScoreGetsTailoringAdvice(t *testing.T) {
	b := &types.ScoreBreakdown{Overall: 45}

	recs := Generate(b)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "tailoring your resume")
}

func TestGenerate_MissingSkillsCappedAtThree(t *testing.T) {
	b := &types.ScoreBreakdown{
		Overall:       70,
		MissingSkills: []string{"docker", "kubernetes", "terraform", "graphql"},
	}

	recs := Generate(b)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "docker, kubernetes, terraform")
	assert.NotContains(t, recs[0], "graphql")
}

func TestGenerate_MatchedSkillsHighlighted(t *testing.T) {
	b := &types.ScoreBreakdown{
		Overall:       70,
		MatchedSkills: []string{"python", "sql"},
	}

	recs := Generate(b)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Great match on these skills: python, sql")
}

func TestGenerate_ExperienceGap(t *testing.T) {
	b := &types.ScoreBreakdown{
		Overall: 65,
		Resume:  &types.ExtractedProfile{ExperienceYears: intPtr(2)},
		Job:     &types.ExtractedProfile{ExperienceYears: intPtr(5)},
	}

	recs := Generate(b)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "compensate for experience gap")
}

func TestGenerate_NoGapWhenRequirementMet(t *testing.T) {
	b := &types.ScoreBreakdown{
		Overall: 65,
		Resume:  &types.ExtractedProfile{ExperienceYears: intPtr(6)},
		Job:     &types.ExtractedProfile{ExperienceYears: intPtr(5)},
	}

	assert.Empty(t, Generate(b))
}

func TestGenerate_HighScoreAffirmation(t *testing.T) {
	b := &types.ScoreBreakdown{Overall: 85}

	recs := Generate(b)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Excellent match!")
}

func TestGenerate_FixedRuleOrder(t *testing.T) {
	b := &types.ScoreBreakdown{
		Overall:       55,
		MatchedSkills: []string{"python"},
		MissingSkills: []string{"docker"},
		Resume:        &types.ExtractedProfile{},
		Job:           &types.ExtractedProfile{ExperienceYears: intPtr(3)},
	}

	recs := Generate(b)

	require.Len(t, recs, 4)
	assert.Contains(t, recs[0], "tailoring")
	assert.Contains(t, recs[1], "missing skills")
	assert.Contains(t, recs[2], "Great match")
	assert.Contains(t, recs[3], "experience gap")
}

func TestReadinessLevel_Bands(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, LevelExcellent},
		{80, LevelExcellent},
		{79, LevelGood},
		{60, LevelGood},
		{59, LevelFair},
		{40, LevelFair},
		{39, LevelLow},
		{0, LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReadinessLevel(tt.score), "score %d", tt.score)
	}
}
