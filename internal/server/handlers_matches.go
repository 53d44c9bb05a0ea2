package server

import (
	"net/http"

	"github.com/jonathan/skill-match/internal/db"
	"github.com/jonathan/skill-match/internal/ranking"
	"github.com/jonathan/skill-match/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CandidateMatchesResponse lists postings ranked for one candidate.
type CandidateMatchesResponse struct {
	CandidateID string                `json:"candidate_id"`
	Matches     []types.RankedPosting `json:"matches"`
}

// PostingCandidatesResponse lists candidates ranked for one posting.
type PostingCandidatesResponse struct {
	PostingID  string                  `json:"posting_id"`
	Candidates []types.RankedCandidate `json:"candidates"`
}

// handleCandidateMatches ranks every stored posting for a candidate
func (s *Server) handleCandidateMatches(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.writeError(w, r, &ErrUnavailable{Service: "database"})
		return
	}

	candidateID, err := db.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		candidate *types.CandidateProfile
		postings  []types.JobPosting
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		candidate, err = s.repo.GetCandidate(ctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		postings, err = s.repo.ListJobPostings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, r, err)
		return
	}
	if candidate == nil {
		s.writeError(w, r, &ErrNotFound{Entity: "candidate", ID: candidateID.String()})
		return
	}

	ranked := ranking.RankPostings(candidate, postings)
	s.logger.Debug("Ranked postings",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("postings", len(postings)),
		zap.Int("matches", len(ranked)),
	)

	s.jsonResponse(w, http.StatusOK, CandidateMatchesResponse{
		CandidateID: candidateID.String(),
		Matches:     ranked,
	})
}

// handlePostingCandidates ranks every stored candidate for a posting
func (s *Server) handlePostingCandidates(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.writeError(w, r, &ErrUnavailable{Service: "database"})
		return
	}

	postingID, err := db.ParseID(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		posting    *types.JobPosting
		candidates []types.CandidateProfile
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		posting, err = s.repo.GetJobPosting(ctx, postingID)
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = s.repo.ListCandidates(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, r, err)
		return
	}
	if posting == nil {
		s.writeError(w, r, &ErrNotFound{Entity: "job posting", ID: postingID.String()})
		return
	}

	ranked := ranking.RankCandidates(posting, candidates)
	s.logger.Debug("Ranked candidates",
		zap.String("posting_id", postingID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(ranked)),
	)

	s.jsonResponse(w, http.StatusOK, PostingCandidatesResponse{
		PostingID:  postingID.String(),
		Candidates: ranked,
	})
}
