package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_ValidPosting(t *testing.T) {
	err := ValidateJSON(
		filepath.Join("testdata", "valid_schema.json"),
		filepath.Join("testdata", "valid_json.json"))

	assert.NoError(t, err)
}

func TestValidateJSON_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		jsonFile string
	}{
		{"missing required field", "invalid_json.json"},
		{"wrong field type", "type_mismatch.json"},
	}

	schemaPath := filepath.Join("testdata", "valid_schema.json")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(schemaPath, filepath.Join("testdata", tt.jsonFile))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "valid_json.json")

	err := ValidateJSON("testdata/nonexistent_schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	tmpDir := t.TempDir()
	malformed := filepath.Join(tmpDir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ invalid json }"), 0644))

	err := ValidateJSON(filepath.Join("testdata", "valid_schema.json"), malformed)
	assert.Error(t, err)
}

func TestValidateJSON_JobPostingArtifactSchema(t *testing.T) {
	schemaPath := "../../schemas/job_posting.schema.json"

	err := ValidateJSON(schemaPath, filepath.Join("testdata", "valid_json.json"))
	assert.NoError(t, err)

	err = ValidateJSON(schemaPath, filepath.Join("testdata", "invalid_json.json"))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve, "schema must load; failures must be document errors")
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["overall_score"],
		"properties": {
			"overall_score": {"type": "integer", "minimum": 0, "maximum": 100},
			"summary": {"type": "string"}
		}
	}`

	assert.NoError(t, ValidateJSONString(schema, `{"overall_score": 72, "summary": "good fit"}`))

	err := ValidateJSONString(schema, `{"summary": "missing the score"}`)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)

	err = ValidateJSONString(schema, `{"overall_score": 250}`)
	assert.Error(t, err)
}

func TestValidateJSONString_NestedFieldPath(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["posting"],
		"properties": {
			"posting": {
				"type": "object",
				"required": ["title"],
				"properties": {
					"title": {"type": "string"}
				}
			}
		}
	}`

	err := ValidateJSONString(schema, `{"posting": {}}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.NotEmpty(t, ve.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "overall_score", Message: "must be an integer"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "title")
	assert.Contains(t, msg, "overall_score")
}
