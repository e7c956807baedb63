package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

const cleanResume = `Jane Doe
jane@example.com (555) 123-4567

Summary
Software engineer with Python and Go.

Experience
Built services at Acme.

Education
BS Computer Science.

Skills
Python, Go, Docker.`

func TestAnalyze_CleanResumeScoresFull(t *testing.T) {
	report := Analyze(cleanResume, "", nil)

	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.NotEmpty(t, report.Passed)
	assert.Nil(t, report.Keywords)
}

func TestAnalyze_TableAndMissingEmail(t *testing.T) {
	report := Analyze("a | b", "", nil)

	// Table and missing email are errors, missing sections a warning,
	// single column and standard characters pass.
	require.Len(t, report.Issues, 2)
	require.Len(t, report.Warnings, 1)
	require.Len(t, report.Passed, 2)
	assert.Equal(t, 100-2*15-5+2*5, report.Score)

	titles := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		titles = append(titles, issue.Title)
	}
	assert.Contains(t, titles, "Table Detected")
	assert.Contains(t, titles, "No Email Found")
}

func TestAnalyze_SpecialBulletsWarn(t *testing.T) {
	text := cleanResume + "\n• Shipped the thing\n• Did the other thing"
	report := Analyze(text, "", nil)

	var found bool
	for _, w := range report.Warnings {
		if w.Title == "Special Bullet Characters" {
			found = true
			assert.Contains(t, w.Description, "2 special characters")
		}
	}
	assert.True(t, found)
}

func TestAnalyze_MultiColumnDetected(t *testing.T) {
	wide := strings.Repeat("left side text   right side text plus enough padding here\n", 7)
	report := Analyze(wide, "", nil)

	var found bool
	for _, issue := range report.Issues {
		if issue.Title == "Multi-Column Layout Detected" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_PhoneMissingIsWarning(t *testing.T) {
	report := Analyze("Experience Education Skills jane@example.com", "", nil)

	var found bool
	for _, w := range report.Warnings {
		if w.Title == "No Phone Found" {
			found = true
		}
	}
	assert.True(t, found)
	assert.Empty(t, report.Issues)
}

func TestAnalyze_KeywordBlend(t *testing.T) {
	job := "We need Python and Docker experience."
	resume := strings.ReplaceAll(cleanResume, "Docker", "Kafka")

	report := Analyze(resume, job, nil)

	require.NotNil(t, report.Keywords)
	assert.Contains(t, report.Keywords.Matched, "python")
	assert.Contains(t, report.Keywords.Missing, "docker")
	assert.Equal(t, 2, report.Keywords.Total)
	assert.Equal(t, 50, report.Keywords.Score)

	// Structural score is 100; blended 0.6*100 + 0.4*50.
	assert.Equal(t, 80, report.Score)
}

func TestAnalyze_JobWithoutKnownTermsIsNeutral(t *testing.T) {
	report := Analyze(cleanResume, "Looking for a wonderful person.", nil)

	require.NotNil(t, report.Keywords)
	assert.Equal(t, 0, report.Keywords.Total)
	assert.Equal(t, 75, report.Keywords.Score)
	assert.Equal(t, 90, report.Score)
}

func TestAnalyze_SectionDetection(t *testing.T) {
	report := Analyze(cleanResume, "", nil)

	byName := make(map[string]bool, len(report.Sections))
	for _, s := range report.Sections {
		byName[s.Name] = s.Found
	}
	assert.True(t, byName["Contact"])
	assert.True(t, byName["Summary"])
	assert.True(t, byName["Experience"])
	assert.True(t, byName["Education"])
	assert.True(t, byName["Skills"])
	assert.False(t, byName["Certifications"])
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	inputs := []string{"", cleanResume, "a | b", "• • • • •"}
	for _, input := range inputs {
		report := Analyze(input, "", nil)
		assert.GreaterOrEqual(t, report.Score, 0)
		assert.LessOrEqual(t, report.Score, 100)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	v := vocab.MustDefault()
	first := Analyze(cleanResume, "Python and Docker.", v)
	second := Analyze(cleanResume, "Python and Docker.", v)
	assert.Equal(t, first, second)
}

func TestSimulateExtraction(t *testing.T) {
	text := "• Shipped **things**\n\nwith   extra   space"
	extracted := SimulateExtraction(text)

	assert.Equal(t, "- Shipped things with extra space", extracted)
}
