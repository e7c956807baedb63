package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

// fakeClient implements llm.Client with a canned payload or error.
type fakeClient struct {
	payload string
	err     error
	calls   int
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.payload, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.payload, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

var sampleInput = types.MatchInput{
	ResumeText: "Python and React developer, 5 years of experience with AWS. Bachelor degree.",
	JobText:    "Looking for Python and Docker, 3+ years of experience required. Degree preferred.",
}

func TestEvaluate_LocalPath(t *testing.T) {
	e := New(nil, nil)

	result, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.Len(t, result.SubScores, 4)
	assert.Contains(t, result.MatchedSkills, "python")
	assert.Contains(t, result.MissingSkills, "docker")
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.ReadinessLevel)
	assert.False(t, result.Degraded)
}

func TestEvaluate_EmptyInputsAreNeutral(t *testing.T) {
	e := New(nil, nil)

	result, err := e.Evaluate(context.Background(), types.MatchInput{}, types.MatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 50, result.OverallScore)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestEvaluate_LocalPathIsByteIdentical(t *testing.T) {
	e := New(nil, nil)

	first, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{})
	require.NoError(t, err)
	second, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestEvaluate_RemoteSuccessMergesAssessment(t *testing.T) {
	client := &fakeClient{
		payload: `{"overall_score": 91, "strengths": ["strong Python"], "gaps": ["no Docker"], "summary": "Close fit."}`,
	}
	e := New(nil, client)

	result, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{UseExternalModel: true})
	require.NoError(t, err)

	assert.Equal(t, 91, result.OverallScore)
	assert.Equal(t, "Excellent Match", result.ReadinessLevel)
	assert.Equal(t, []string{"strong Python"}, result.Strengths)
	assert.Equal(t, []string{"no Docker"}, result.Gaps)
	assert.Equal(t, "Close fit.", result.Summary)
	assert.False(t, result.Degraded)

	// Skill lists still come from the local pipeline.
	assert.Contains(t, result.MatchedSkills, "python")
	assert.Len(t, result.SubScores, 4)
}

func TestEvaluate_RemoteFailureFallsBackToLocal(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	e := New(nil, client)

	result, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{UseExternalModel: true})
	require.NoError(t, err, "collaborator failure must not surface as an error")

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "external assessment failed")

	// The degraded result matches what the local path would produce.
	local, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, local.OverallScore, result.OverallScore)
	assert.Equal(t, local.Recommendations, result.Recommendations)
}

func TestEvaluate_MalformedRemotePayloadFallsBack(t *testing.T) {
	client := &fakeClient{payload: `{"overall_score": "very good"}`}
	e := New(nil, client)

	result, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{UseExternalModel: true})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Empty(t, result.Summary)
}

func TestEvaluate_NoClientConfiguredDegrades(t *testing.T) {
	e := New(nil, nil)

	result, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{UseExternalModel: true})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Contains(t, result.DegradedReason, "no model client configured")
}

func TestEvaluate_InvalidOptions(t *testing.T) {
	e := New(nil, nil)

	_, err := e.Evaluate(context.Background(), sampleInput, types.MatchOptions{TimeoutSeconds: 999})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid match options")
}

func TestEvaluate_CanceledContext(t *testing.T) {
	e := New(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Evaluate(ctx, sampleInput, types.MatchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
