package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/db"
	"github.com/jonathan/skill-match/internal/metrics"
	"github.com/jonathan/skill-match/internal/types"
	"go.uber.org/zap"
)

// StartAssessmentRequest is the body of POST /candidates/{id}/assessment.
type StartAssessmentRequest struct {
	Skill      string `json:"skill"`
	Difficulty string `json:"difficulty"`
}

// AnswerRequest is the body of POST /candidates/{id}/assessment/answers.
type AnswerRequest struct {
	QuestionIndex *int `json:"question_index"`
	OptionIndex   *int `json:"option_index"`
}

// QuestionView is a question with its answer withheld.
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// SessionView is the client-facing copy of a session.
type SessionView struct {
	ID         uuid.UUID        `json:"id"`
	Skill      string           `json:"skill"`
	Difficulty types.Difficulty `json:"difficulty"`
	Questions  []QuestionView   `json:"questions"`
	Answers    map[int]int      `json:"answers"`
	Completed  bool             `json:"completed"`
	StartedAt  time.Time        `json:"started_at"`
}

// AssessmentView is the response of GET /candidates/{id}/assessment.
type AssessmentView struct {
	State    string              `json:"state"`
	Session  *SessionView        `json:"session,omitempty"`
	Progress assessment.Progress `json:"progress"`
}

// SubmitResponse is a finalized test result plus whether it reached the
// database.
type SubmitResponse struct {
	types.TestResult
	Persisted bool `json:"persisted"`
}

func newSessionView(s *assessment.Session) *SessionView {
	if s == nil {
		return nil
	}
	questions := make([]QuestionView, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = QuestionView{Prompt: q.Prompt, Options: q.Options}
	}
	return &SessionView{
		ID:         s.ID,
		Skill:      s.Skill,
		Difficulty: s.Difficulty,
		Questions:  questions,
		Answers:    s.Answers,
		Completed:  s.Completed,
		StartedAt:  s.StartedAt,
	}
}

// candidateKey returns the assessment key for the request. With a database
// configured it must be a candidate UUID so results can be persisted.
func (s *Server) candidateKey(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	if raw == "" {
		return "", &ErrValidation{Field: "id", Message: "is required"}
	}
	if s.repo == nil {
		return raw, nil
	}
	id, err := db.ParseID(raw)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.assessments.View(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AssessmentView{
		State:    view.State,
		Session:  newSessionView(view.Session),
		Progress: view.Progress,
	})
}

func (s *Server) handleStartAssessment(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req StartAssessmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Skill) == "" {
		s.writeError(w, r, &ErrValidation{Field: "skill", Message: "is required"})
		return
	}
	difficulty, err := types.ParseDifficulty(req.Difficulty)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "difficulty", Message: err.Error()})
		return
	}

	session, err := s.assessments.Start(r.Context(), key, req.Skill, difficulty)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, AssessmentView{
		State:    assessment.StateActive.String(),
		Session:  newSessionView(session),
		Progress: assessment.Progress{Total: len(session.Questions)},
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req AnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.QuestionIndex == nil {
		s.writeError(w, r, &ErrValidation{Field: "question_index", Message: "is required"})
		return
	}
	if req.OptionIndex == nil {
		s.writeError(w, r, &ErrValidation{Field: "option_index", Message: "is required"})
		return
	}

	feedback, err := s.assessments.Answer(r.Context(), key, *req.QuestionIndex, *req.OptionIndex)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, feedback)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.assessments.Finalize(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	metrics.RecordTest(string(result.Difficulty), string(result.Tier))

	resp := SubmitResponse{TestResult: result}
	if s.repo != nil {
		// candidateKey already checked the UUID form
		candidateID := uuid.MustParse(key)
		if err := s.repo.SaveTestResult(r.Context(), candidateID, result); err != nil {
			s.logger.Error("Failed to persist test result",
				zap.String("candidate_id", key),
				zap.String("skill", result.Skill),
				zap.Error(err),
			)
		} else {
			resp.Persisted = true
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleResetAssessment(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.assessments.Reset(r.Context(), key); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := s.assessments.Report(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleExportResults(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := s.assessments.Export(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="assessment-results.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("Error writing export", zap.Error(err))
	}
}

func (s *Server) handleClearResults(w http.ResponseWriter, r *http.Request) {
	key, err := s.candidateKey(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.repo != nil {
		deleted, err := s.repo.DeleteTestResults(r.Context(), uuid.MustParse(key))
		if err != nil {
			s.writeError(w, r, fmt.Errorf("failed to delete stored test results: %w", err))
			return
		}
		s.logger.Debug("Deleted stored test results",
			zap.String("candidate_id", key),
			zap.Int64("deleted", deleted),
		)
	}

	if err := s.assessments.ClearResults(r.Context(), key); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
