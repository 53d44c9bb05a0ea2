// Package types provides type definitions for structured data used throughout the skill-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile is a candidate's declared or extracted skills together with
// the resume and skill-test scores used by the match gate.
type CandidateProfile struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Skills      []string `json:"skills"`
	ResumeScore int      `json:"resume_score" validate:"min=0,max=100"`
	TestScore   int      `json:"test_score" validate:"min=0,max=100"`
}

// JobPosting is a job opening with its required skills and score floors.
type JobPosting struct {
	ID             string   `json:"id,omitempty"`
	Company        string   `json:"company,omitempty"`
	Role           string   `json:"role,omitempty"`
	RequiredSkills []string `json:"required_skills"`
	MinResumeScore int      `json:"min_resume_score" validate:"min=0,max=100"`
	MinTestScore   int      `json:"min_test_score" validate:"min=0,max=100"`
}

// MatchResult is the compatibility score between one candidate and one posting.
type MatchResult struct {
	Score      float64 `json:"score"`
	GatePassed bool    `json:"gate_passed"`
}

// RankedPosting is a posting that scored above zero for a candidate.
type RankedPosting struct {
	Posting       JobPosting `json:"posting"`
	Score         float64    `json:"score"`
	MatchedSkills []string   `json:"matched_skills"`
	MissingSkills []string   `json:"missing_skills"`
	Notes         string     `json:"notes"`
}

// RankedCandidate is a candidate that scored above zero for a posting.
type RankedCandidate struct {
	Candidate     CandidateProfile `json:"candidate"`
	Score         float64          `json:"score"`
	MatchedSkills []string         `json:"matched_skills"`
	MissingSkills []string         `json:"missing_skills"`
	Notes         string           `json:"notes"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate validates the JobPosting using the validator.
func (p *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
