// Package server provides the HTTP REST API for skill matching and
// assessments.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/server/ratelimit"
	"github.com/jonathan/skill-match/internal/skills"
	"github.com/jonathan/skill-match/internal/types"
	"github.com/jonathan/skill-match/internal/vocabulary"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Repository is the persistent store behind the ranking routes and result
// persistence. *db.DB implements it.
type Repository interface {
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
	ListCandidates(ctx context.Context) ([]types.CandidateProfile, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	ListJobPostings(ctx context.Context) ([]types.JobPosting, error)
	SaveTestResult(ctx context.Context, candidateID uuid.UUID, r types.TestResult) error
	DeleteTestResults(ctx context.Context, candidateID uuid.UUID) (int64, error)
}

// Config holds server configuration
type Config struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Deps are the services the handlers run on. Repository may be nil, in
// which case the ranking routes answer 503 and results are not persisted.
type Deps struct {
	Vocabulary  *vocabulary.Vocabulary
	Assessments *assessment.Service
	Repository  Repository
	RateLimiter *ratelimit.Limiter
	Logger      *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	shutdownTimeout time.Duration

	vocab       *vocabulary.Vocabulary
	extractor   *skills.Extractor
	assessments *assessment.Service
	repo        Repository
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
}

// New creates a new server instance
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Vocabulary == nil {
		return nil, errors.New("server requires a vocabulary")
	}
	if deps.Assessments == nil {
		return nil, errors.New("server requires an assessment service")
	}

	s := &Server{
		shutdownTimeout: cfg.ShutdownTimeout,
		vocab:           deps.Vocabulary,
		extractor:       skills.NewExtractor(deps.Vocabulary),
		assessments:     deps.Assessments,
		repo:            deps.Repository,
		rateLimiter:     deps.RateLimiter,
		logger:          deps.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 30 * time.Second
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Stateless scoring
	mux.HandleFunc("POST /skills/extract", s.handleExtractSkills)
	mux.HandleFunc("POST /jobs/classify", s.handleClassify)
	mux.HandleFunc("POST /match", s.handleMatch)

	// Ranking against the database
	mux.HandleFunc("GET /candidates/{id}/matches", s.handleCandidateMatches)
	mux.HandleFunc("GET /job-postings/{id}/candidates", s.handlePostingCandidates)

	// Assessments
	mux.HandleFunc("GET /candidates/{id}/assessment", s.handleGetAssessment)
	mux.HandleFunc("POST /candidates/{id}/assessment", s.handleStartAssessment)
	mux.HandleFunc("DELETE /candidates/{id}/assessment", s.handleResetAssessment)
	mux.HandleFunc("POST /candidates/{id}/assessment/answers", s.handleAnswer)
	mux.HandleFunc("POST /candidates/{id}/assessment/submit", s.handleSubmit)

	// Results
	mux.HandleFunc("GET /candidates/{id}/results", s.handleGetResults)
	mux.HandleFunc("GET /candidates/{id}/results/export", s.handleExportResults)
	mux.HandleFunc("DELETE /candidates/{id}/results", s.handleClearResults)

	s.handler = s.withRateLimit(s.withLogging(s.withMetrics(s.withCORS(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"database": s.repo != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it. Server-side failures
// are logged and their details withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	var preconditionErr *assessment.PreconditionError
	if errors.As(err, &preconditionErr) && len(preconditionErr.Missing) > 0 {
		s.jsonResponse(w, status, map[string]any{
			"error":      err.Error(),
			"unanswered": preconditionErr.Missing,
		})
		return
	}

	switch status {
	case http.StatusInternalServerError:
		s.errorResponse(w, status, "internal server error")
	default:
		s.errorResponse(w, status, err.Error())
	}
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}
