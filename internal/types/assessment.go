// Package types provides type definitions for structured data used throughout the skill-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is a quiz difficulty tier.
type Difficulty string

// Difficulty tiers.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// Question is a four-option multiple-choice question.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// ProficiencyTier is the coarse label derived from a quiz percentage.
type ProficiencyTier string

// Proficiency tiers, best first.
const (
	TierExpert           ProficiencyTier = "Expert"
	TierProficient       ProficiencyTier = "Proficient"
	TierBeginner         ProficiencyTier = "Beginner"
	TierNeedsImprovement ProficiencyTier = "Needs Improvement"
)

// AnswerDetail is the per-question review of a submitted test.
type AnswerDetail struct {
	QuestionIndex  int    `json:"question_index"`
	Prompt         string `json:"prompt"`
	SelectedIndex  int    `json:"selected_index"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	Correct        bool   `json:"correct"`
	Explanation    string `json:"explanation,omitempty"`
}

// TestResult is the scored outcome of one finalized test session.
type TestResult struct {
	Skill        string          `json:"skill"`
	Difficulty   Difficulty      `json:"difficulty"`
	CorrectCount int             `json:"correct_count"`
	TotalCount   int             `json:"total_count"`
	Percentage   float64         `json:"percentage"`
	Tier         ProficiencyTier `json:"tier"`
	Passed       bool            `json:"passed"`
	Details      []AnswerDetail  `json:"details"`
	Timestamp    time.Time       `json:"timestamp"`
}

// ResultsSummary aggregates a candidate's stored test results.
type ResultsSummary struct {
	TotalTests     int     `json:"total_tests"`
	AverageScore   float64 `json:"average_score"`
	ExpertCount    int     `json:"expert_count"`
	TotalQuestions int     `json:"total_questions"`
}

// Recommendations splits tested skills into weak and strong ones.
type Recommendations struct {
	NeedsImprovement []string `json:"needs_improvement"`
	Strong           []string `json:"strong"`
}
