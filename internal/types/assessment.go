// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RemoteAssessment is the structured payload expected back from the
// external text-generation model.
type RemoteAssessment struct {
	OverallScore int      `json:"overall_score" validate:"gte=0,lte=100"`
	Strengths    []string `json:"strengths"`
	Gaps         []string `json:"gaps"`
	Summary      string   `json:"summary"`
}
