package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"job_posting.schema.json",
	"match_result.schema.json",
	"remote_assessment.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestJobPostingSchema_AcceptsMinimalPosting(t *testing.T) {
	schema, err := os.ReadFile("job_posting.schema.json")
	require.NoError(t, err)

	doc := `{"title": "Backend Engineer", "description": "Build Go services."}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestJobPostingSchema_RejectsMissingDescription(t *testing.T) {
	schema, err := os.ReadFile("job_posting.schema.json")
	require.NoError(t, err)

	doc := `{"title": "Backend Engineer"}`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestMatchResultSchema_AcceptsFullResult(t *testing.T) {
	schema, err := os.ReadFile("match_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"overall_score": 72,
		"readiness_level": "Good Match",
		"sub_scores": [
			{"name": "skill", "value": 50, "evidence": "1 of 2 required skills present"},
			{"name": "experience", "value": 100}
		],
		"matched_skills": ["python"],
		"missing_skills": ["docker"],
		"recommendations": ["Great match on these skills: python - make sure they're prominent"],
		"degraded": true,
		"degraded_reason": "model timeout"
	}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestMatchResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	schema, err := os.ReadFile("match_result.schema.json")
	require.NoError(t, err)

	doc := `{
		"overall_score": 140,
		"readiness_level": "Good Match",
		"sub_scores": [],
		"matched_skills": [],
		"missing_skills": [],
		"recommendations": []
	}`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestRemoteAssessmentSchema_MatchesEngineContract(t *testing.T) {
	schema, err := os.ReadFile("remote_assessment.schema.json")
	require.NoError(t, err)

	valid := `{"overall_score": 78, "strengths": ["x"], "gaps": ["y"], "summary": "ok"}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), valid))

	missing := `{"overall_score": 78, "strengths": [], "gaps": []}`
	assert.Error(t, schemas.ValidateJSONString(string(schema), missing))
}
