package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range []string{Vocabulary, QuestionBank, Candidate, JobPosting} {
		t.Run(name, func(t *testing.T) {
			data, err := Load(name)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v), "schema should be valid JSON")
			assert.Equal(t, "object", v["type"])
		})
	}
}

func TestLoad_UnknownSchema(t *testing.T) {
	_, err := Load("nope.schema.json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_Vocabulary(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name:     "valid",
			document: `{"categories":[{"name":"Backend","keywords":["go","sql"],"weight":1.0}]}`,
		},
		{
			name:      "weight below one",
			document:  `{"categories":[{"name":"Backend","keywords":["go"],"weight":0.5}]}`,
			wantError: true,
		},
		{
			name:      "no categories",
			document:  `{"categories":[]}`,
			wantError: true,
		},
		{
			name:      "empty keyword",
			document:  `{"categories":[{"name":"Backend","keywords":[""],"weight":1}]}`,
			wantError: true,
		},
		{
			name:      "unknown field",
			document:  `{"categories":[{"name":"Backend","keywords":[],"weight":1,"extra":true}]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Vocabulary, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidate_QuestionBank(t *testing.T) {
	valid := `{"skills":[{"skill":"go","levels":{"easy":[
		{"prompt":"q?","options":["a","b","c","d"],"correct_index":2,"explanation":"c"}]}}]}`
	assert.NoError(t, Validate(QuestionBank, []byte(valid)))

	threeOptions := `{"skills":[{"skill":"go","levels":{"easy":[
		{"prompt":"q?","options":["a","b","c"],"correct_index":2}]}}]}`
	assert.Error(t, Validate(QuestionBank, []byte(threeOptions)))

	badDifficulty := `{"skills":[{"skill":"go","levels":{"expert":[
		{"prompt":"q?","options":["a","b","c","d"],"correct_index":0}]}}]}`
	assert.Error(t, Validate(QuestionBank, []byte(badDifficulty)))

	badIndex := `{"skills":[{"skill":"go","levels":{"hard":[
		{"prompt":"q?","options":["a","b","c","d"],"correct_index":4}]}}]}`
	assert.Error(t, Validate(QuestionBank, []byte(badIndex)))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Candidate, []byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()

	validPath := filepath.Join(tmpDir, "posting.json")
	require.NoError(t, os.WriteFile(validPath,
		[]byte(`{"required_skills":["python"],"min_resume_score":80,"min_test_score":85}`), 0644))
	assert.NoError(t, ValidateFile(JobPosting, validPath))

	invalidPath := filepath.Join(tmpDir, "candidate.json")
	require.NoError(t, os.WriteFile(invalidPath,
		[]byte(`{"skills":["python"],"resume_score":101,"test_score":50}`), 0644))
	err := ValidateFile(Candidate, invalidPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	err = ValidateFile(Candidate, filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
