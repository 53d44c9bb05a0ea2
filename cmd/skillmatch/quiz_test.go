package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_AllCorrect(t *testing.T) {
	resetFlags(t)
	quizSkill = "Python"
	quizDifficulty = "medium"

	out, err := runInProcess(t, runQuiz, "2\n3\n2\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Python test (medium): 3 questions")
	assert.Contains(t, out, "Question 3/3")
	assert.Contains(t, out, "✓ Correct!")
	assert.NotContains(t, out, "✗ Incorrect")
	assert.Contains(t, out, "3/3 (100.00%)")
	assert.Contains(t, out, "Expert")
}

func TestQuiz_FeedbackOnWrongAnswer(t *testing.T) {
	resetFlags(t)
	quizSkill = "python"
	quizJSON = true

	out, err := runInProcess(t, runQuiz, "2\n1\n2\n")
	require.NoError(t, err)
	require.Contains(t, out, "✗ Incorrect. The correct answer is: Context management")

	// The JSON result follows the interactive transcript
	idx := strings.Index(out, "\n{")
	require.Positive(t, idx)
	var result types.TestResult
	require.NoError(t, json.Unmarshal([]byte(out[idx+1:]), &result))
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 66.67, result.Percentage)
	assert.Equal(t, types.TierProficient, result.Tier)
	assert.True(t, result.Passed)
}

func TestQuiz_EarlySubmitIsRefused(t *testing.T) {
	resetFlags(t)
	quizSkill = "python"

	out, err := runInProcess(t, runQuiz, "2\ns\n3\n2\n")
	require.NoError(t, err)
	assert.Contains(t, out, "not every question is answered (unanswered: 1, 2)")
	assert.Contains(t, out, "3/3 (100.00%)")
}

func TestQuiz_InvalidInputReprompts(t *testing.T) {
	resetFlags(t)
	quizSkill = "python"

	out, err := runInProcess(t, runQuiz, "7\nabc\n2\n3\n2\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a number between 1 and 4")
	assert.Contains(t, out, "100.00%")
}

func TestQuiz_UnknownSkillUsesGenericQuestion(t *testing.T) {
	resetFlags(t)
	quizSkill = "Haskell"
	quizDifficulty = "hard"

	out, err := runInProcess(t, runQuiz, "4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "What is the primary use of Haskell?")
	assert.Contains(t, out, "1/1 (100.00%)")
}

func TestQuiz_Export(t *testing.T) {
	resetFlags(t)
	quizSkill = "python"
	quizExport = filepath.Join(t.TempDir(), "results.json")

	_, err := runInProcess(t, runQuiz, "2\n3\n2\n")
	require.NoError(t, err)

	data, err := os.ReadFile(quizExport)
	require.NoError(t, err)

	var doc assessment.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Summary.TotalTests)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "Python", doc.Results[0].Skill)
}

func TestQuiz_Aborted(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit", "2\nq\n"},
		{"input closed", "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			quizSkill = "python"

			_, err := runInProcess(t, runQuiz, tt.input)
			assert.ErrorIs(t, err, errQuizAborted)
		})
	}
}

func TestQuiz_InvalidDifficulty(t *testing.T) {
	resetFlags(t)
	quizSkill = "python"
	quizDifficulty = "impossible"

	_, err := runInProcess(t, runQuiz, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown difficulty")
}
