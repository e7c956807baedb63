package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --resume",
			args:        []string{"score", "--job", "job.txt"},
			errorString: "--resume is required",
		},
		{
			name:        "Missing job source",
			args:        []string{"score", "--resume", "resume.txt"},
			errorString: "either --job or --job-url must be provided",
		},
		{
			name:        "Both --job and --job-url",
			args:        []string{"score", "--resume", "resume.txt", "--job", "job.txt", "--job-url", "https://example.com"},
			errorString: "mutually exclusive",
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

func TestScoreCommand_MissingResumeFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score",
		"--resume", "/nonexistent/resume.txt",
		"--job", "/nonexistent/job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load resume")
}
