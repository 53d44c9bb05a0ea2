package assessment

import (
	"errors"
	"testing"
	"time"

	"github.com/jonathan/skill-match/internal/quiz"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(quiz.Default(), WithClock(func() time.Time { return fixedTime }))
}

func TestEngine_PythonMediumExample(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, StateIdle, e.State())

	session, err := e.Start("python", types.Medium)
	require.NoError(t, err)
	require.Len(t, session.Questions, 3)
	assert.Equal(t, StateActive, e.State())

	fb, err := e.Answer(0, 1)
	require.NoError(t, err)
	assert.True(t, fb.Correct)

	fb, err = e.Answer(1, 0)
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, 2, fb.CorrectIndex)
	assert.Equal(t, "Context management", fb.CorrectOption)
	assert.NotEmpty(t, fb.Explanation)

	_, err = e.Answer(2, 1)
	require.NoError(t, err)

	result, err := e.Finalize()
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, e.State())

	assert.Equal(t, "python", result.Skill)
	assert.Equal(t, types.Medium, result.Difficulty)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 66.67, result.Percentage)
	assert.Equal(t, types.TierProficient, result.Tier)
	assert.True(t, result.Passed)
	assert.Equal(t, fixedTime, result.Timestamp)

	require.Len(t, result.Details, 3)
	assert.True(t, result.Details[0].Correct)
	assert.False(t, result.Details[1].Correct)
	assert.Equal(t, 0, result.Details[1].SelectedIndex)
	assert.Equal(t, "Loop iteration", result.Details[1].SelectedOption)
	assert.Equal(t, "Context management", result.Details[1].CorrectOption)

	stored, ok := e.Results().Get("Python", types.Medium)
	require.True(t, ok)
	assert.Equal(t, result, stored)
}

func TestEngine_FinalizeWithUnansweredQuestions(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start("python", types.Medium)
	require.NoError(t, err)

	_, err = e.Answer(0, 1)
	require.NoError(t, err)
	_, err = e.Answer(2, 1)
	require.NoError(t, err)
	before := e.Session()

	_, err = e.Finalize()
	require.Error(t, err)

	var precondition *PreconditionError
	require.True(t, errors.As(err, &precondition))
	assert.Equal(t, []int{1}, precondition.Missing)
	assert.Contains(t, err.Error(), "unanswered: 1")

	assert.Equal(t, StateActive, e.State())
	assert.Equal(t, before, e.Session())
	assert.Equal(t, 0, e.Results().Len())
}

func TestEngine_AnswerOverwrites(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start("python", types.Medium)
	require.NoError(t, err)

	_, err = e.Answer(0, 0)
	require.NoError(t, err)
	fb, err := e.Answer(0, 1)
	require.NoError(t, err)
	assert.True(t, fb.Correct)

	assert.Equal(t, Progress{Answered: 1, Total: 3}, e.Progress())
	assert.Equal(t, 1, e.Session().Answers[0])
}

func TestEngine_AnswerPreconditions(t *testing.T) {
	e := newTestEngine()

	_, err := e.Answer(0, 0)
	var precondition *PreconditionError
	require.True(t, errors.As(err, &precondition))
	assert.Contains(t, err.Error(), "no test in progress")

	_, err = e.Start("python", types.Easy)
	require.NoError(t, err)

	tests := []struct {
		name          string
		questionIndex int
		optionIndex   int
		message       string
	}{
		{"negative question", -1, 0, "question index out of range"},
		{"question past end", 3, 0, "question index out of range"},
		{"negative option", 0, -1, "option index out of range"},
		{"option past end", 0, 4, "option index out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Answer(tt.questionIndex, tt.optionIndex)
			require.True(t, errors.As(err, &precondition))
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, 0, e.Progress().Answered)
		})
	}
}

func TestEngine_CompletedSessionRejectsAnswers(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start("rust", types.Hard)
	require.NoError(t, err)
	_, err = e.Answer(0, 3)
	require.NoError(t, err)
	_, err = e.Finalize()
	require.NoError(t, err)

	_, err = e.Answer(0, 0)
	assert.ErrorContains(t, err, "already submitted")
	_, err = e.Finalize()
	assert.ErrorContains(t, err, "already submitted")
}

func TestEngine_GenericFallbackScoresFullMarks(t *testing.T) {
	e := newTestEngine()
	session, err := e.Start("Rust", types.Hard)
	require.NoError(t, err)
	require.Len(t, session.Questions, 1)

	fb, err := e.Answer(0, 3)
	require.NoError(t, err)
	assert.True(t, fb.Correct)

	result, err := e.Finalize()
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, types.TierExpert, result.Tier)
}

func TestEngine_StartReplacesSession(t *testing.T) {
	e := newTestEngine()
	first, err := e.Start("python", types.Easy)
	require.NoError(t, err)
	_, err = e.Answer(0, 1)
	require.NoError(t, err)

	second, err := e.Start("sql", types.Hard)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, StateActive, e.State())
	assert.Equal(t, "sql", e.Session().Skill)
	assert.Equal(t, Progress{Answered: 0, Total: 3}, e.Progress())
}

func TestEngine_StartErrors(t *testing.T) {
	e := newTestEngine()

	_, err := e.Start("  ", types.Easy)
	assert.ErrorContains(t, err, "skill is empty")

	_, err = e.Start("python", types.Difficulty("expert"))
	assert.ErrorContains(t, err, "unknown difficulty")
	assert.Equal(t, StateIdle, e.State())
}

func TestEngine_ResetKeepsResults(t *testing.T) {
	e := newTestEngine()
	_, err := e.Start("go", types.Easy)
	require.NoError(t, err)
	_, err = e.Answer(0, 3)
	require.NoError(t, err)
	_, err = e.Finalize()
	require.NoError(t, err)

	e.Reset()
	assert.Equal(t, StateIdle, e.State())
	assert.Nil(t, e.Session())
	assert.Equal(t, Progress{}, e.Progress())
	assert.Equal(t, 1, e.Results().Len())
}

func TestEngine_RetakeOverwritesResult(t *testing.T) {
	e := newTestEngine()

	for _, answer := range []int{0, 3} {
		_, err := e.Start("Go", types.Easy)
		require.NoError(t, err)
		_, err = e.Answer(0, answer)
		require.NoError(t, err)
		_, err = e.Finalize()
		require.NoError(t, err)
	}

	require.Equal(t, 1, e.Results().Len())
	result, ok := e.Results().Get("go", types.Easy)
	require.True(t, ok)
	assert.Equal(t, 100.0, result.Percentage)
}

func TestEngine_SessionIsCopy(t *testing.T) {
	e := newTestEngine()
	session, err := e.Start("python", types.Easy)
	require.NoError(t, err)

	session.Answers[0] = 1
	session.Questions[0].CorrectIndex = 0
	assert.Equal(t, 0, e.Progress().Answered)
	assert.Equal(t, 1, e.Session().Questions[0].CorrectIndex)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   types.ProficiencyTier
	}{
		{100, types.TierExpert},
		{80, types.TierExpert},
		{79.99, types.TierProficient},
		{60, types.TierProficient},
		{59.99, types.TierBeginner},
		{40, types.TierBeginner},
		{39.99, types.TierNeedsImprovement},
		{0, types.TierNeedsImprovement},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.percentage), "percentage %.2f", tt.percentage)
	}
}

func TestTestableSkills(t *testing.T) {
	skills := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		skills = append(skills, string(rune('a'+i)))
	}
	skills = append([]string{"Python", "python"}, skills...)

	testable := TestableSkills(skills)
	require.Len(t, testable, MaxTestableSkills)
	assert.Equal(t, "python", testable[0])
	assert.Equal(t, "a", testable[1])

	assert.Empty(t, TestableSkills(nil))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "unknown", State(42).String())
}
