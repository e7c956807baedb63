package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultAssessTimeout bounds a single external assessment call.
const DefaultAssessTimeout = 10 * time.Second

// remoteAssessmentSchema is the wire contract for assessment responses.
// Responses that do not satisfy it are rejected before unmarshaling.
const remoteAssessmentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overall_score", "strengths", "gaps", "summary"],
  "properties": {
    "overall_score": {"type": "integer", "minimum": 0, "maximum": 100},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "gaps": {"type": "array", "items": {"type": "string"}},
    "summary": {"type": "string"}
  }
}`

var assessValidate = validator.New()

// AssessMatch asks the external model to judge the resume against the job
// description. Every failure mode returns an *AssessmentError; callers are
// expected to fall back to local scoring rather than surface it.
func AssessMatch(ctx context.Context, client Client, input types.MatchInput, timeout time.Duration) (*types.RemoteAssessment, error) {
	if timeout <= 0 {
		timeout = DefaultAssessTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	userInput := prompts.Format(prompts.MustGet("scoring.json", "assess_input"), map[string]string{
		"JobText":    input.JobText,
		"ResumeText": input.ResumeText,
	})
	prompt := BuildExtractionPrompt(MatchAssessmentSchema(), userInput)

	payload, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &AssessmentError{Stage: StageGenerate, Message: "model call failed", Cause: err}
	}

	if err := schemas.ValidateJSONString(remoteAssessmentSchema, payload); err != nil {
		return nil, &AssessmentError{Stage: StageValidate, Message: "response violates assessment contract", Cause: err}
	}

	var assessment types.RemoteAssessment
	if err := json.Unmarshal([]byte(payload), &assessment); err != nil {
		return nil, &AssessmentError{Stage: StageParse, Message: "response is not valid JSON", Cause: err}
	}
	if err := assessValidate.Struct(&assessment); err != nil {
		return nil, &AssessmentError{Stage: StageValidate, Message: "score out of range", Cause: err}
	}

	return &assessment, nil
}
