package publish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func validResumeData() json.RawMessage {
	return json.RawMessage(`{
		"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
		"experience": [],
		"education": [],
		"skills": [],
		"selectedTemplate": null
	}`)
}

func TestValidateResumeData_Valid(t *testing.T) {
	errs, err := ValidateResumeData(validResumeData())
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestValidateResumeData_TemplateMayBeString(t *testing.T) {
	errs, err := ValidateResumeData(json.RawMessage(`{
		"personalInfo": {"fullName": "Ada", "email": "ada@example.com"},
		"experience": [{"id": "x"}],
		"education": [],
		"skills": [],
		"selectedTemplate": "timeline"
	}`))
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestValidateResumeData_MissingSections(t *testing.T) {
	errs, err := ValidateResumeData(json.RawMessage(`{"personalInfo": {"fullName": "Ada", "email": "ada@example.com"}}`))
	require.NoError(t, err)
	require.NotEmpty(t, errs)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	require.True(t, fields["resumeData"])
}

func TestValidateResumeData_EmptyFullName(t *testing.T) {
	errs, err := ValidateResumeData(json.RawMessage(`{
		"personalInfo": {"fullName": "", "email": "ada@example.com"},
		"experience": [],
		"education": [],
		"skills": [],
		"selectedTemplate": null
	}`))
	require.NoError(t, err)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0].Field, "resumeData.personalInfo")
}

func TestValidateResumeData_WrongTypes(t *testing.T) {
	errs, err := ValidateResumeData(json.RawMessage(`{
		"personalInfo": {"fullName": "Ada", "email": "ada@example.com"},
		"experience": "not-an-array",
		"education": [],
		"skills": [],
		"selectedTemplate": null
	}`))
	require.NoError(t, err)
	require.NotEmpty(t, errs)
}
