package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skill-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion(prompt string, correct int) types.Question {
	return types.Question{
		Prompt:       prompt,
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		Explanation:  "because",
	}
}

func TestDefault_CoversBuiltInSkills(t *testing.T) {
	b := Default()
	assert.Equal(t, []string{"aws", "java", "javascript", "python", "react", "sql"}, b.Skills())

	for _, skill := range b.Skills() {
		for _, d := range types.Difficulties {
			assert.True(t, b.Has(skill, d), "%s/%s", skill, d)
			questions := b.QuestionsFor(skill, d)
			assert.Len(t, questions, 3, "%s/%s", skill, d)
			for _, q := range questions {
				assert.Len(t, q.Options, 4)
				assert.NotEmpty(t, q.Explanation)
			}
		}
	}
}

func TestQuestionsFor_PythonMedium(t *testing.T) {
	questions := Default().QuestionsFor("Python", types.Medium)
	require.Len(t, questions, 3)

	assert.Equal(t, "What is the difference between append() and extend() methods?", questions[0].Prompt)
	assert.Equal(t, 1, questions[0].CorrectIndex)
	assert.Equal(t, 2, questions[1].CorrectIndex)
	assert.Equal(t, 1, questions[2].CorrectIndex)
	assert.Equal(t, "Context management", questions[1].CorrectOption())
}

func TestQuestionsFor_GenericFallback(t *testing.T) {
	tests := []struct {
		name       string
		skill      string
		difficulty types.Difficulty
	}{
		{"Unknown skill", "Rust", types.Easy},
		{"Unknown skill with spaces", "machine learning", types.Hard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := Default().QuestionsFor(tt.skill, tt.difficulty)
			require.Len(t, questions, 1)

			q := questions[0]
			assert.Equal(t, "What is the primary use of "+tt.skill+"?", q.Prompt)
			assert.Equal(t, []string{
				tt.skill + " is used for web development",
				tt.skill + " is used for data analysis",
				tt.skill + " is used for system administration",
				"All of the above depending on context",
			}, q.Options)
			assert.Equal(t, 3, q.CorrectIndex)
			assert.Equal(t, "The usage of "+tt.skill+" depends on the specific context and requirements.", q.Explanation)
		})
	}
}

func TestQuestionsFor_MissingDifficultyFallsBack(t *testing.T) {
	b, err := New([]SkillQuestions{{
		Skill:  "Go",
		Levels: map[types.Difficulty][]types.Question{types.Easy: {sampleQuestion("q1", 0)}},
	}})
	require.NoError(t, err)

	assert.True(t, b.Has("go", types.Easy))
	assert.False(t, b.Has("go", types.Hard))
	assert.Equal(t, "q1", b.QuestionsFor("GO", types.Easy)[0].Prompt)
	assert.Equal(t, GenericQuestion("go"), b.QuestionsFor("go", types.Hard)[0])
}

func TestQuestionsFor_ReturnsCopy(t *testing.T) {
	b := Default()
	questions := b.QuestionsFor("sql", types.Easy)
	original := questions[0].Options[0]

	questions[0].Options[0] = "mutated"
	questions[0].CorrectIndex = 99

	again := b.QuestionsFor("sql", types.Easy)
	assert.Equal(t, original, again[0].Options[0])
	assert.NotEqual(t, 99, again[0].CorrectIndex)
}

func TestNew_Errors(t *testing.T) {
	good := map[types.Difficulty][]types.Question{types.Easy: {sampleQuestion("q", 0)}}

	tests := []struct {
		name    string
		entries []SkillQuestions
		message string
	}{
		{"no skills", nil, "no skills"},
		{"empty skill", []SkillQuestions{{Skill: " ", Levels: good}}, "skill name is empty"},
		{"duplicate skill", []SkillQuestions{{Skill: "Go", Levels: good}, {Skill: "go", Levels: good}}, "duplicate skill"},
		{"no levels", []SkillQuestions{{Skill: "go"}}, "no difficulty levels"},
		{"unknown difficulty", []SkillQuestions{{Skill: "go", Levels: map[types.Difficulty][]types.Question{
			"expert": {sampleQuestion("q", 0)},
		}}}, "unknown difficulty"},
		{"empty level", []SkillQuestions{{Skill: "go", Levels: map[types.Difficulty][]types.Question{
			types.Easy: {},
		}}}, "no questions"},
		{"three options", []SkillQuestions{{Skill: "go", Levels: map[types.Difficulty][]types.Question{
			types.Easy: {{Prompt: "q", Options: []string{"a", "b", "c"}}},
		}}}, "has 3 options"},
		{"index out of range", []SkillQuestions{{Skill: "go", Levels: map[types.Difficulty][]types.Question{
			types.Easy: {sampleQuestion("q", 4)},
		}}}, "out of range"},
		{"empty prompt", []SkillQuestions{{Skill: "go", Levels: map[types.Difficulty][]types.Question{
			types.Easy: {sampleQuestion("", 0)},
		}}}, "prompt is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"skills": [{
			"skill": "Go",
			"levels": {
				"easy": [{
					"prompt": "Which keyword starts a goroutine?",
					"options": ["go", "async", "spawn", "thread"],
					"correct_index": 0,
					"explanation": "The go statement starts a goroutine."
				}]
			}
		}]
	}`), 0644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, b.Skills())
	assert.Equal(t, "go", b.QuestionsFor("Go", types.Easy)[0].CorrectOption())
}

func TestLoadFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	threeOptions := filepath.Join(tmpDir, "three.json")
	require.NoError(t, os.WriteFile(threeOptions, []byte(`{"skills": [{"skill": "go", "levels": {"easy": [
		{"prompt": "q", "options": ["a", "b", "c"], "correct_index": 0}
	]}}]}`), 0644))
	notJSON := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(notJSON, []byte(`{skills`), 0644))

	for _, path := range []string{"", filepath.Join(tmpDir, "missing.json"), threeOptions, notJSON} {
		_, err := LoadFile(path)
		require.Error(t, err, path)
		var cfgErr *ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), path)
	}
}

func TestFromConfig(t *testing.T) {
	b, err := FromConfig("")
	require.NoError(t, err)
	assert.Same(t, Default(), b)

	_, err = FromConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
