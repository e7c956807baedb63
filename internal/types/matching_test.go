// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBreakdown_SubScoreLookup(t *testing.T) {
	b := ScoreBreakdown{
		SubScores: []SubScore{
			{Name: DimensionSkill, Value: 67},
			{Name: DimensionExperience, Value: 100},
		},
	}

	assert.Equal(t, 67, b.SubScore(DimensionSkill))
	assert.Equal(t, 100, b.SubScore(DimensionExperience))
	assert.Equal(t, 0, b.SubScore(DimensionKeyword))
}

func TestMatchResult_JSONFieldNames(t *testing.T) {
	result := MatchResult{
		OverallScore:   72,
		ReadinessLevel: "Good Match",
		MatchedSkills:  []string{"python"},
		MissingSkills:  []string{"docker"},
		Degraded:       true,
		DegradedReason: "model timeout",
	}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"overall_score":72`)
	assert.Contains(t, string(jsonBytes), `"readiness_level":"Good Match"`)
	assert.Contains(t, string(jsonBytes), `"degraded_reason":"model timeout"`)
}

func TestMatchResult_OmitsRemoteFieldsWhenLocal(t *testing.T) {
	result := MatchResult{OverallScore: 50}

	jsonBytes, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "strengths")
	assert.NotContains(t, string(jsonBytes), "summary")
	assert.NotContains(t, string(jsonBytes), "degraded")
}
