package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile CandidateProfile
		wantErr bool
	}{
		{"valid", CandidateProfile{Skills: []string{"python"}, ResumeScore: 88, TestScore: 90}, false},
		{"bounds", CandidateProfile{ResumeScore: 0, TestScore: 100}, false},
		{"resume too high", CandidateProfile{ResumeScore: 101, TestScore: 50}, true},
		{"negative test", CandidateProfile{ResumeScore: 50, TestScore: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				require.Error(t, err)
				_, ok := err.(validator.ValidationErrors)
				assert.True(t, ok, "should be validator.ValidationErrors")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobPosting_Validate(t *testing.T) {
	valid := JobPosting{RequiredSkills: []string{"python"}, MinResumeScore: 80, MinTestScore: 100}
	assert.NoError(t, valid.Validate())

	invalid := JobPosting{MinResumeScore: 120}
	assert.Error(t, invalid.Validate())
}

func TestJobPosting_JSONFieldNames(t *testing.T) {
	var p JobPosting
	err := json.Unmarshal([]byte(`{
		"id": "JOB501",
		"company": "Innovatech",
		"role": "Software Engineer",
		"required_skills": ["python", "java"],
		"min_resume_score": 80,
		"min_test_score": 85
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "JOB501", p.ID)
	assert.Equal(t, []string{"python", "java"}, p.RequiredSkills)
	assert.Equal(t, 80, p.MinResumeScore)
	assert.Equal(t, 85, p.MinTestScore)
}
