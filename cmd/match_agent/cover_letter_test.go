package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverLetterCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume",
			args:        []string{"cover-letter", "--job", "job.txt"},
			errorString: "resume",
		},
		{
			name:        "Missing job source",
			args:        []string{"cover-letter", "--resume", "resume.txt"},
			errorString: "either --job or --job-url is required",
		},
		{
			name:        "Both --job and --job-url",
			args:        []string{"cover-letter", "--resume", "resume.txt", "--job", "job.txt", "--job-url", "https://example.com"},
			errorString: "mutually exclusive",
		},
		{
			name:        "Unknown tone",
			args:        []string{"cover-letter", "--resume", "resume.txt", "--job", "job.txt", "--tone", "casual"},
			errorString: "unknown tone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestCoverLetterCommand_GeneratesLetter(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath,
		[]byte("Engineer with 5 years of experience in Python and Docker."), 0o644))
	require.NoError(t, os.WriteFile(jobPath,
		[]byte("Develop services and collaborate with the team."), 0o644))

	cmd := exec.Command(binaryPath, "cover-letter",
		"--resume", resumePath,
		"--job", jobPath,
		"--company", "Acme",
		"--tone", "confident")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	var letter struct {
		Text      string `json:"text"`
		Tone      string `json:"tone"`
		WordCount int    `json:"word_count"`
	}
	require.NoError(t, json.Unmarshal(output, &letter))
	assert.Equal(t, "confident", letter.Tone)
	assert.Contains(t, letter.Text, "Acme")
	assert.Contains(t, letter.Text, "With 5 years of proven experience")
	assert.Greater(t, letter.WordCount, 50)
}
