package autofill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe
github.com/janedoe
https://janedoe.dev

Senior Engineer at Acme Inc.
2019 - 2023
Built services in Python with Docker.

Software Developer at Globex Corp.
2016 - 2019

Education
BS Computer Science, Stanford University, 2016`

func TestExtractProfile_PersonalAndContact(t *testing.T) {
	profile := ExtractProfile(sampleResume, nil)

	assert.Equal(t, "Jane", profile.Personal.FirstName)
	assert.Equal(t, "Doe", profile.Personal.LastName)
	assert.Equal(t, "Jane Doe", profile.Personal.FullName)

	assert.Equal(t, "jane.doe@example.com", profile.Contact.Email)
	assert.Equal(t, "(555) 123-4567", profile.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", profile.Contact.LinkedIn)
	assert.Equal(t, "github.com/janedoe", profile.Contact.GitHub)
	assert.Equal(t, "https://janedoe.dev", profile.Contact.Website)
}

func TestExtractProfile_Experience(t *testing.T) {
	profile := ExtractProfile(sampleResume, nil)

	require.Len(t, profile.Experience, 2)
	assert.Equal(t, "Senior Engineer", profile.Experience[0].Title)
	assert.Equal(t, "Acme Inc", profile.Experience[0].Company)
	assert.Equal(t, "2019", profile.Experience[0].StartDate)
	assert.Equal(t, "2023", profile.Experience[0].EndDate)

	assert.Equal(t, "Software Developer", profile.Experience[1].Title)
	assert.Equal(t, "Globex Corp", profile.Experience[1].Company)
}

func TestExtractProfile_Education(t *testing.T) {
	profile := ExtractProfile(sampleResume, nil)

	require.NotEmpty(t, profile.Education)
	assert.Equal(t, "BS", profile.Education[0].Degree)
	assert.Equal(t, "Stanford University", profile.Education[0].School)
	assert.Equal(t, "2016", profile.Education[0].GraduationYear)
}

func TestExtractProfile_Skills(t *testing.T) {
	profile := ExtractProfile(sampleResume, nil)

	assert.Contains(t, profile.Skills, "python")
	assert.Contains(t, profile.Skills, "docker")
}

func TestExtractProfile_FieldsAndConfidence(t *testing.T) {
	profile := ExtractProfile(sampleResume, nil)

	assert.Contains(t, profile.ExtractedFields, "personal.first_name")
	assert.Contains(t, profile.ExtractedFields, "contact.email")
	assert.Contains(t, profile.ExtractedFields, "experience")
	assert.Contains(t, profile.ExtractedFields, "education")
	assert.Contains(t, profile.ExtractedFields, "skills")

	assert.Greater(t, profile.Confidence, 60)
	assert.LessOrEqual(t, profile.Confidence, 100)
}

func TestExtractProfile_EmptyText(t *testing.T) {
	profile := ExtractProfile("", nil)

	assert.Empty(t, profile.Personal.FullName)
	assert.Empty(t, profile.Contact.Email)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.ExtractedFields)
	assert.Equal(t, 0, profile.Confidence)
}

func TestExtractProfile_PresentEndDate(t *testing.T) {
	text := "John Smith\nLead Developer at Initech Inc.\n2021 - Present"
	profile := ExtractProfile(text, nil)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Present", profile.Experience[0].EndDate)
}

func TestExtractProfile_WebsiteSkipsProfileLinks(t *testing.T) {
	text := "Jane Doe\nhttps://linkedin.com/in/janedoe\nhttps://github.com/janedoe"
	profile := ExtractProfile(text, nil)

	assert.Empty(t, profile.Contact.Website)
	assert.Equal(t, "linkedin.com/in/janedoe", profile.Contact.LinkedIn)
}

func TestExtractProfile_Deterministic(t *testing.T) {
	first := ExtractProfile(sampleResume, nil)
	second := ExtractProfile(sampleResume, nil)
	assert.Equal(t, first, second)
}
