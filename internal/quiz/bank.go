// Package quiz holds the question bank used by skill assessments and selects
// questions for a (skill, difficulty) pair.
package quiz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skill-match/internal/types"
)

// optionCount is the number of options every question must have.
const optionCount = 4

// genericAnswerIndex is the position of the catch-all option in the generic
// question served for unknown (skill, difficulty) pairs.
const genericAnswerIndex = 3

// SkillQuestions is the bank entry for one skill.
type SkillQuestions struct {
	Skill  string                                `json:"skill"`
	Levels map[types.Difficulty][]types.Question `json:"levels"`
}

type bankKey struct {
	skill      string
	difficulty types.Difficulty
}

// Bank maps (skill, difficulty) pairs to ordered questions. It is read-only
// after construction and safe for concurrent use.
type Bank struct {
	questions map[bankKey][]types.Question
	skills    []string
}

// New builds a bank. Skill names are matched case-insensitively, so two
// entries that differ only in case are duplicates.
func New(entries []SkillQuestions) (*Bank, error) {
	if len(entries) == 0 {
		return nil, &ConfigurationError{Source: "skills", Message: "question bank has no skills"}
	}

	b := &Bank{questions: make(map[bankKey][]types.Question)}
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		skill := strings.ToLower(strings.TrimSpace(entry.Skill))
		if skill == "" {
			return nil, &ConfigurationError{Source: "skills", Message: "skill name is empty"}
		}
		if seen[skill] {
			return nil, &ConfigurationError{Source: skill, Message: "duplicate skill"}
		}
		seen[skill] = true
		if len(entry.Levels) == 0 {
			return nil, &ConfigurationError{Source: skill, Message: "skill has no difficulty levels"}
		}

		for difficulty, questions := range entry.Levels {
			if !difficulty.Valid() {
				return nil, &ConfigurationError{
					Source:  skill,
					Message: fmt.Sprintf("unknown difficulty %q", difficulty),
				}
			}
			if len(questions) == 0 {
				return nil, &ConfigurationError{
					Source:  skill,
					Message: fmt.Sprintf("no questions for difficulty %s", difficulty),
				}
			}
			for i, q := range questions {
				if err := checkQuestion(q); err != nil {
					return nil, &ConfigurationError{
						Source:  fmt.Sprintf("%s/%s[%d]", skill, difficulty, i),
						Message: err.Error(),
					}
				}
			}
			b.questions[bankKey{skill, difficulty}] = copyQuestions(questions)
		}
		b.skills = append(b.skills, skill)
	}

	sort.Strings(b.skills)
	return b, nil
}

// MustNew is like New but panics on error.
func MustNew(entries []SkillQuestions) *Bank {
	b, err := New(entries)
	if err != nil {
		panic(err)
	}
	return b
}

func checkQuestion(q types.Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("prompt is empty")
	}
	if len(q.Options) != optionCount {
		return fmt.Errorf("has %d options, want %d", len(q.Options), optionCount)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= optionCount {
		return fmt.Errorf("correct index %d out of range", q.CorrectIndex)
	}
	return nil
}

// QuestionsFor returns the questions for skill at difficulty. The skill is
// looked up lowercased. When the bank has no entry for the pair, a single
// generic question templated with skill is returned instead, so the result
// is never empty. The returned slice is a copy.
func (b *Bank) QuestionsFor(skill string, difficulty types.Difficulty) []types.Question {
	if questions, ok := b.questions[bankKey{strings.ToLower(skill), difficulty}]; ok {
		return copyQuestions(questions)
	}
	return []types.Question{GenericQuestion(skill)}
}

// Has reports whether the bank has dedicated questions for the pair.
func (b *Bank) Has(skill string, difficulty types.Difficulty) bool {
	_, ok := b.questions[bankKey{strings.ToLower(skill), difficulty}]
	return ok
}

// Skills returns the lowercased skill names in the bank, sorted.
func (b *Bank) Skills() []string {
	return append([]string(nil), b.skills...)
}

// GenericQuestion is the placeholder served for skills the bank does not
// cover. Its correct answer is always the catch-all last option.
func GenericQuestion(skill string) types.Question {
	return types.Question{
		Prompt: fmt.Sprintf("What is the primary use of %s?", skill),
		Options: []string{
			fmt.Sprintf("%s is used for web development", skill),
			fmt.Sprintf("%s is used for data analysis", skill),
			fmt.Sprintf("%s is used for system administration", skill),
			"All of the above depending on context",
		},
		CorrectIndex: genericAnswerIndex,
		Explanation:  fmt.Sprintf("The usage of %s depends on the specific context and requirements.", skill),
	}
}

func copyQuestions(questions []types.Question) []types.Question {
	out := make([]types.Question, len(questions))
	for i, q := range questions {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}
