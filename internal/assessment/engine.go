// Package assessment runs skill quizzes for one candidate at a time and
// keeps the candidate's scored results.
package assessment

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skill-match/internal/parsing"
	"github.com/jonathan/skill-match/internal/quiz"
	"github.com/jonathan/skill-match/internal/types"
)

// Proficiency thresholds on the test percentage.
const (
	expertThreshold     = 80.0
	proficientThreshold = 60.0
	beginnerThreshold   = 40.0
	passThreshold       = 60.0
)

// MaxTestableSkills caps how many extracted skills are offered for testing.
const MaxTestableSkills = 15

// State is the lifecycle state of an engine's session.
type State int

const (
	// StateIdle means no test is in progress.
	StateIdle State = iota
	// StateActive means questions are being answered.
	StateActive
	// StateCompleted means the test was submitted and scored.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one quiz attempt at a (skill, difficulty).
type Session struct {
	ID         uuid.UUID        `json:"id"`
	Skill      string           `json:"skill"`
	Difficulty types.Difficulty `json:"difficulty"`
	Questions  []types.Question `json:"questions"`
	Answers    map[int]int      `json:"answers"`
	Completed  bool             `json:"completed"`
	StartedAt  time.Time        `json:"started_at"`
}

// Feedback is revealed as soon as an answer is recorded.
type Feedback struct {
	QuestionIndex int    `json:"question_index"`
	Correct       bool   `json:"correct"`
	CorrectIndex  int    `json:"correct_index"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

// Progress counts answered questions of the current session.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine is the assessment state for a single candidate: at most one session
// plus the results collection. It is not safe for concurrent use; Service
// serializes access per candidate.
type Engine struct {
	bank    *quiz.Bank
	now     func() time.Time
	session *Session
	results *Results
}

// NewEngine creates an idle engine drawing questions from bank.
func NewEngine(bank *quiz.Bank, opts ...Option) *Engine {
	e := &Engine{
		bank:    bank,
		now:     time.Now,
		results: NewResults(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State reports where the engine is in the test lifecycle.
func (e *Engine) State() State {
	switch {
	case e.session == nil:
		return StateIdle
	case e.session.Completed:
		return StateCompleted
	default:
		return StateActive
	}
}

// Start begins a test, discarding any session in progress. Questions come
// from the bank, which falls back to a generic question for unknown pairs.
func (e *Engine) Start(skill string, difficulty types.Difficulty) (*Session, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, &PreconditionError{Operation: "start test", Message: "skill is empty"}
	}
	if !difficulty.Valid() {
		return nil, &PreconditionError{Operation: "start test", Message: "unknown difficulty " + string(difficulty)}
	}

	e.session = &Session{
		ID:         uuid.New(),
		Skill:      skill,
		Difficulty: difficulty,
		Questions:  e.bank.QuestionsFor(skill, difficulty),
		Answers:    make(map[int]int),
		StartedAt:  e.now().UTC(),
	}
	return e.Session(), nil
}

// Answer records the selected option for a question and reveals whether it
// was correct. Answering the same question again overwrites the earlier
// answer.
func (e *Engine) Answer(questionIndex, optionIndex int) (Feedback, error) {
	if err := e.requireActive("answer question"); err != nil {
		return Feedback{}, err
	}

	if questionIndex < 0 || questionIndex >= len(e.session.Questions) {
		return Feedback{}, &PreconditionError{
			Operation: "answer question",
			Message:   "question index out of range",
		}
	}
	q := e.session.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Feedback{}, &PreconditionError{
			Operation: "answer question",
			Message:   "option index out of range",
		}
	}

	e.session.Answers[questionIndex] = optionIndex
	return Feedback{
		QuestionIndex: questionIndex,
		Correct:       optionIndex == q.CorrectIndex,
		CorrectIndex:  q.CorrectIndex,
		CorrectOption: q.CorrectOption(),
		Explanation:   q.Explanation,
	}, nil
}

// Finalize scores the session once every question has an answer and stores
// the result, replacing any earlier result for the same skill and
// difficulty. With unanswered questions it fails and nothing changes.
func (e *Engine) Finalize() (types.TestResult, error) {
	if err := e.requireActive("submit test"); err != nil {
		return types.TestResult{}, err
	}

	if missing := e.unanswered(); len(missing) > 0 {
		return types.TestResult{}, &PreconditionError{
			Operation: "submit test",
			Message:   "not every question is answered",
			Missing:   missing,
		}
	}

	result := score(e.session, e.now().UTC())
	e.session.Completed = true
	e.results.Put(result)

	return result, nil
}

// Reset clears the session and returns to idle. Stored results are kept.
func (e *Engine) Reset() {
	e.session = nil
}

// Session returns a copy of the current session, or nil when idle.
func (e *Engine) Session() *Session {
	if e.session == nil {
		return nil
	}
	s := *e.session
	s.Questions = make([]types.Question, len(e.session.Questions))
	for i, q := range e.session.Questions {
		s.Questions[i] = q
		s.Questions[i].Options = append([]string(nil), q.Options...)
	}
	s.Answers = make(map[int]int, len(e.session.Answers))
	for k, v := range e.session.Answers {
		s.Answers[k] = v
	}
	return &s
}

// Progress reports answered and total question counts.
func (e *Engine) Progress() Progress {
	if e.session == nil {
		return Progress{}
	}
	return Progress{Answered: len(e.session.Answers), Total: len(e.session.Questions)}
}

// Results returns the candidate's results collection.
func (e *Engine) Results() *Results {
	return e.results
}

func (e *Engine) requireActive(operation string) error {
	switch e.State() {
	case StateIdle:
		return &PreconditionError{Operation: operation, Message: "no test in progress"}
	case StateCompleted:
		return &PreconditionError{Operation: operation, Message: "test already submitted"}
	}
	return nil
}

func (e *Engine) unanswered() []int {
	var missing []int
	for i := range e.session.Questions {
		if _, ok := e.session.Answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

func score(s *Session, at time.Time) types.TestResult {
	details := make([]types.AnswerDetail, 0, len(s.Questions))
	correct := 0

	for i, q := range s.Questions {
		selected := s.Answers[i]
		ok := selected == q.CorrectIndex
		if ok {
			correct++
		}
		details = append(details, types.AnswerDetail{
			QuestionIndex:  i,
			Prompt:         q.Prompt,
			SelectedIndex:  selected,
			SelectedOption: q.Options[selected],
			CorrectOption:  q.CorrectOption(),
			Correct:        ok,
			Explanation:    q.Explanation,
		})
	}

	percentage := 0.0
	if len(s.Questions) > 0 {
		percentage = 100 * float64(correct) / float64(len(s.Questions))
	}

	return types.TestResult{
		Skill:        s.Skill,
		Difficulty:   s.Difficulty,
		CorrectCount: correct,
		TotalCount:   len(s.Questions),
		Percentage:   math.Round(percentage*100) / 100,
		Tier:         TierFor(percentage),
		Passed:       percentage >= passThreshold,
		Details:      details,
		Timestamp:    at,
	}
}

// TierFor maps a percentage to its proficiency tier.
func TierFor(percentage float64) types.ProficiencyTier {
	switch {
	case percentage >= expertThreshold:
		return types.TierExpert
	case percentage >= proficientThreshold:
		return types.TierProficient
	case percentage >= beginnerThreshold:
		return types.TierBeginner
	default:
		return types.TierNeedsImprovement
	}
}

// TestableSkills normalizes and deduplicates skills and keeps at most
// MaxTestableSkills of them, in order.
func TestableSkills(skills []string) []string {
	normalized := parsing.NormalizeSkills(skills)
	if len(normalized) > MaxTestableSkills {
		normalized = normalized[:MaxTestableSkills]
	}
	return normalized
}
