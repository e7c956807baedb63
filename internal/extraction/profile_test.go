package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

func TestExtractProfile_SkillsInFirstOccurrenceOrder(t *testing.T) {
	v := vocab.MustDefault()
	text := "Built services in Python, deployed with Docker on AWS."

	profile := ExtractProfile(text, v)

	require.NotEmpty(t, profile.Skills)
	assert.Equal(t, []string{"python", "docker", "aws"}, profile.Skills)
}

func TestExtractProfile_DeduplicatesAliasedSkills(t *testing.T) {
	v := vocab.MustDefault()
	text := "react and reactjs and react.js"

	profile := ExtractProfile(text, v)

	count := 0
	for _, s := range profile.Skills {
		if s == "react" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractProfile_ExperienceYears(t *testing.T) {
	v := vocab.MustDefault()

	tests := []struct {
		name  string
		text  string
		years int
	}{
		{"of experience phrasing", "5 years of experience with Python", 5},
		{"plus years phrasing", "7+ years experience in backend work", 7},
		{"years in phrasing", "3 years in fintech", 3},
		{"labeled phrasing", "experience: 10 years", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ExtractProfile(tt.text, v)
			require.NotNil(t, profile.ExperienceYears)
			assert.Equal(t, tt.years, *profile.ExperienceYears)
		})
	}
}

func TestExtractProfile_NoExperienceYears(t *testing.T) {
	v := vocab.MustDefault()
	profile := ExtractProfile("Python developer who ships", v)
	assert.Nil(t, profile.ExperienceYears)
}

func TestExtractProfile_AbsurdExperienceYearsIgnored(t *testing.T) {
	v := vocab.MustDefault()

	// A digit run this long would wrap int arithmetic; it must be
	// skipped, not reported as a bogus value.
	profile := ExtractProfile("12345678901234567890 years of experience", v)
	assert.Nil(t, profile.ExperienceYears)

	// A smaller but still implausible count is skipped too, while a
	// later plausible phrasing still matches.
	profile = ExtractProfile("200 years of experience, really 8 years in backend work", v)
	require.NotNil(t, profile.ExperienceYears)
	assert.Equal(t, 8, *profile.ExperienceYears)
}

func TestExtractProfile_ExperienceLevel(t *testing.T) {
	v := vocab.MustDefault()

	tests := []struct {
		name  string
		text  string
		level string
	}{
		{"senior keyword", "Senior engineer, Python", "senior"},
		{"lead from principal", "Principal architect on the platform team", "lead"},
		{"entry from junior", "Junior developer, 1 year of experience", "entry"},
		{"years imply mid", "4 years of experience building APIs", "mid"},
		{"nothing stated", "I like computers", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ExtractProfile(tt.text, v)
			assert.Equal(t, tt.level, profile.ExperienceLevel)
		})
	}
}

func TestExtractProfile_EducationKeywords(t *testing.T) {
	v := vocab.MustDefault()
	text := "Bachelor of Science in Computer Science, State University"

	profile := ExtractProfile(text, v)

	assert.Contains(t, profile.Education, "bachelor")
	assert.Contains(t, profile.Education, "computer science")
	assert.Contains(t, profile.Education, "university")
}

func TestExtractProfile_AchievementTags(t *testing.T) {
	v := vocab.MustDefault()
	text := "Led a team of 5. Reduced infra spend by 30%. Built the billing system."

	profile := ExtractProfile(text, v)

	assert.Contains(t, profile.Achievements, "leadership")
	assert.Contains(t, profile.Achievements, "cost savings")
	assert.Contains(t, profile.Achievements, "development")
	assert.Contains(t, profile.Achievements, "quantified results")
}

func TestExtractProfile_AchievementVerbsMatchWholeWords(t *testing.T) {
	v := vocab.MustDefault()
	// "bootled" must not trigger the "led" verb.
	profile := ExtractProfile("bootled knowledgeable", v)
	assert.NotContains(t, profile.Achievements, "leadership")
}

func TestExtractProfile_EmptyInput(t *testing.T) {
	v := vocab.MustDefault()

	profile := ExtractProfile("", v)

	require.NotNil(t, profile)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Technologies)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Achievements)
	assert.Nil(t, profile.ExperienceYears)
	assert.Equal(t, "unknown", profile.ExperienceLevel)
}
