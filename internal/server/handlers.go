package server

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/metrics"
	"github.com/jonathan/skill-match/internal/ranking"
	"github.com/jonathan/skill-match/internal/types"
)

// ExtractRequest is the body of POST /skills/extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse lists the vocabulary keywords found in the text.
type ExtractResponse struct {
	Skills []string `json:"skills"`
	// TestableSkills is the capped list offered for assessment.
	TestableSkills []string `json:"testable_skills"`
}

// ClassifyRequest is the body of POST /jobs/classify. When Skills is empty
// the skills are extracted from Text first.
type ClassifyRequest struct {
	Skills []string `json:"skills"`
	Text   string   `json:"text,omitempty"`
}

// MatchRequest is the body of POST /match.
type MatchRequest struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Posting   *types.JobPosting       `json:"posting"`
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	found := s.extractor.Extract(req.Text)
	metrics.SkillsExtracted.Add(float64(len(found)))

	s.jsonResponse(w, http.StatusOK, ExtractResponse{Skills: found, TestableSkills: assessment.TestableSkills(found)})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	skillList := req.Skills
	if len(skillList) == 0 && strings.TrimSpace(req.Text) != "" {
		skillList = s.extractor.Extract(req.Text)
		metrics.SkillsExtracted.Add(float64(len(skillList)))
	}

	s.jsonResponse(w, http.StatusOK, ranking.Classify(skillList, s.vocab))
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Candidate == nil {
		s.writeError(w, r, &ErrValidation{Field: "candidate", Message: "is required"})
		return
	}
	if req.Posting == nil {
		s.writeError(w, r, &ErrValidation{Field: "posting", Message: "is required"})
		return
	}
	if err := req.Candidate.Validate(); err != nil {
		s.writeError(w, r, validationError("candidate", err))
		return
	}
	if err := req.Posting.Validate(); err != nil {
		s.writeError(w, r, validationError("posting", err))
		return
	}

	result := ranking.ScoreMatch(req.Candidate, req.Posting)
	metrics.RecordMatch(result.GatePassed)

	s.jsonResponse(w, http.StatusOK, result)
}

// validationError turns validator field errors into an ErrValidation naming
// the first offending field.
func validationError(prefix string, err error) *ErrValidation {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{
			Field:   prefix + "." + fe.Field(),
			Message: strings.TrimSpace("failed " + fe.Tag() + " " + fe.Param()),
		}
	}
	return &ErrValidation{Field: prefix, Message: err.Error()}
}
