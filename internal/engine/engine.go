// Package engine orchestrates a match evaluation end to end: normalize,
// extract, score, recommend, and optionally consult the external model.
// The local path is pure and deterministic; the external path can only
// improve the result or degrade back to the local one, never fail it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/recommend"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Engine evaluates resume-to-job matches against one vocabulary.
type Engine struct {
	vocab    *vocab.Vocabulary
	client   llm.Client
	validate *validator.Validate
}

// New creates an engine. A nil client disables the external model path;
// evaluations requesting it then degrade to local scoring.
func New(v *vocab.Vocabulary, client llm.Client) *Engine {
	if v == nil {
		v = vocab.MustDefault()
	}
	return &Engine{
		vocab:    v,
		client:   client,
		validate: validator.New(),
	}
}

// Evaluate scores one resume against one job posting. The returned error
// is limited to caller misuse (invalid options) and context cancellation;
// degenerate input and collaborator failures produce a result instead.
func (e *Engine) Evaluate(ctx context.Context, input types.MatchInput, opts types.MatchOptions) (*types.MatchResult, error) {
	if err := e.validate.Struct(&opts); err != nil {
		return nil, fmt.Errorf("invalid match options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := e.evaluateLocal(input, opts)

	if !opts.UseExternalModel {
		return result, nil
	}

	assessment, err := e.assess(ctx, input, opts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Degraded = true
		result.DegradedReason = degradedReason(err)
		if opts.Verbose {
			log.Printf("[VERBOSE] External assessment failed, using local score: %v", err)
		}
		return result, nil
	}

	// Remote verdict replaces the overall score; the locally computed
	// sub-scores and skill lists stay so the result keeps one shape.
	result.OverallScore = assessment.OverallScore
	result.ReadinessLevel = recommend.ReadinessLevel(assessment.OverallScore)
	result.Strengths = assessment.Strengths
	result.Gaps = assessment.Gaps
	result.Summary = assessment.Summary
	return result, nil
}

// evaluateLocal runs the deterministic pipeline.
func (e *Engine) evaluateLocal(input types.MatchInput, opts types.MatchOptions) *types.MatchResult {
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracting profiles (resume %d bytes, job %d bytes)",
			len(input.ResumeText), len(input.JobText))
	}

	resume := extraction.ExtractProfile(input.ResumeText, e.vocab)
	job := extraction.ExtractProfile(input.JobText, e.vocab)

	breakdown := scoring.Score(resume, job, input.ResumeText, input.JobText, e.vocab)

	return &types.MatchResult{
		OverallScore:    breakdown.Overall,
		ReadinessLevel:  recommend.ReadinessLevel(breakdown.Overall),
		SubScores:       breakdown.SubScores,
		MatchedSkills:   breakdown.MatchedSkills,
		MissingSkills:   breakdown.MissingSkills,
		Recommendations: recommend.Generate(breakdown),
	}
}

func (e *Engine) assess(ctx context.Context, input types.MatchInput, opts types.MatchOptions) (*types.RemoteAssessment, error) {
	if e.client == nil {
		return nil, &llm.AssessmentError{Stage: llm.StageGenerate, Message: "no model client configured"}
	}
	timeout := time.Duration(opts.TimeoutSeconds) * time.Second
	return llm.AssessMatch(ctx, e.client, input, timeout)
}

// degradedReason maps an assessment failure onto a short, stable reason
// suitable for the result payload.
func degradedReason(err error) string {
	var assessErr *llm.AssessmentError
	if errors.As(err, &assessErr) {
		return fmt.Sprintf("external assessment failed: %s", assessErr.Message)
	}
	return "external assessment failed"
}
