// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "MatchAssessment")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "integer"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base every point on the provided documents, do not invent details.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// MatchAssessmentSchema returns the extraction schema for resume-to-job
// match assessment. The field set is the contract the engine validates
// responses against; anything off-contract is treated as a failed call.
func MatchAssessmentSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "MatchAssessment",
		Description: `You are an expert ATS and senior technical recruiter.
Your task is to analyze the candidate's resume against the provided job description.
You must only return a single, valid JSON object that strictly adheres to the schema.`,
		Fields: []SchemaField{
			{
				Name:        "overall_score",
				Type:        "integer",
				Description: "Numerical fit score from 0 to 100",
				Required:    true,
			},
			{
				Name:        "strengths",
				Type:        "[\"string\"]",
				Description: "3-5 specific points where the resume excels",
				Required:    true,
			},
			{
				Name:        "gaps",
				Type:        "[\"string\"]",
				Description: "3-5 specific skills or experiences from the job description that are missing or weak",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "Brief three-sentence summary of the candidate's fit",
				Required:    true,
			},
		},
	}
}
