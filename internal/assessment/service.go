package assessment

import (
	"context"
	"sync"

	"github.com/jonathan/skill-match/internal/quiz"
	"github.com/jonathan/skill-match/internal/types"
	"go.uber.org/zap"
)

type candidateLock struct {
	mu   sync.Mutex
	refs int
}

// Service runs assessments for many candidates on top of a Store. Calls for
// the same candidate are serialized; different candidates run concurrently.
type Service struct {
	bank   *quiz.Bank
	store  Store
	logger *zap.Logger
	opts   []Option

	mu    sync.Mutex
	locks map[string]*candidateLock
}

// NewService creates a service. A nil logger disables logging.
func NewService(bank *quiz.Bank, store Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		bank:   bank,
		store:  store,
		logger: logger,
		opts:   opts,
		locks:  make(map[string]*candidateLock),
	}
}

func (s *Service) lock(candidateID string) func() {
	s.mu.Lock()
	l, ok := s.locks[candidateID]
	if !ok {
		l = &candidateLock{}
		s.locks[candidateID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, candidateID)
		}
		s.mu.Unlock()
	}
}

// Do loads the candidate's engine, runs fn and saves the engine if fn
// succeeds. State is not saved when fn returns an error.
func (s *Service) Do(ctx context.Context, candidateID string, fn func(*Engine) error) error {
	unlock := s.lock(candidateID)
	defer unlock()

	snapshot, err := s.store.Load(ctx, candidateID)
	if err != nil {
		return err
	}

	engine := Restore(s.bank, snapshot, s.opts...)
	if err := fn(engine); err != nil {
		return err
	}

	return s.store.Save(ctx, candidateID, engine.Snapshot())
}

// View is a read-only picture of a candidate's assessment.
type View struct {
	State    string   `json:"state"`
	Session  *Session `json:"session,omitempty"`
	Progress Progress `json:"progress"`
}

// View returns the candidate's current state and session.
func (s *Service) View(ctx context.Context, candidateID string) (View, error) {
	var view View
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		view = View{State: e.State().String(), Session: e.Session(), Progress: e.Progress()}
		return nil
	})
	return view, err
}

// Start begins a new test for the candidate.
func (s *Service) Start(ctx context.Context, candidateID, skill string, difficulty types.Difficulty) (*Session, error) {
	var session *Session
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		var err error
		session, err = e.Start(skill, difficulty)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Assessment started",
		zap.String("candidate_id", candidateID),
		zap.String("skill", session.Skill),
		zap.String("difficulty", string(difficulty)),
		zap.Int("questions", len(session.Questions)),
	)
	return session, nil
}

// Answer records an answer for the candidate's active test.
func (s *Service) Answer(ctx context.Context, candidateID string, questionIndex, optionIndex int) (Feedback, error) {
	var feedback Feedback
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		var err error
		feedback, err = e.Answer(questionIndex, optionIndex)
		return err
	})
	return feedback, err
}

// Finalize submits the candidate's active test.
func (s *Service) Finalize(ctx context.Context, candidateID string) (types.TestResult, error) {
	var result types.TestResult
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		var err error
		result, err = e.Finalize()
		return err
	})
	if err != nil {
		return types.TestResult{}, err
	}

	s.logger.Info("Assessment completed",
		zap.String("candidate_id", candidateID),
		zap.String("skill", result.Skill),
		zap.String("difficulty", string(result.Difficulty)),
		zap.Float64("percentage", result.Percentage),
		zap.String("tier", string(result.Tier)),
	)
	return result, nil
}

// Reset returns the candidate to idle, keeping results.
func (s *Service) Reset(ctx context.Context, candidateID string) error {
	return s.Do(ctx, candidateID, func(e *Engine) error {
		e.Reset()
		return nil
	})
}

// Report bundles a candidate's results with their summary and recommendations.
type Report struct {
	Results         []types.TestResult    `json:"results"`
	Summary         types.ResultsSummary  `json:"summary"`
	Recommendations types.Recommendations `json:"recommendations"`
	// Latest is the most recently completed result. It is the one that
	// feeds a candidate's test score.
	Latest *types.TestResult `json:"latest,omitempty"`
}

// Report returns the candidate's results.
func (s *Service) Report(ctx context.Context, candidateID string) (Report, error) {
	var report Report
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		report = Report{
			Results:         e.Results().All(),
			Summary:         e.Results().Summary(),
			Recommendations: e.Results().Recommendations(),
		}
		if latest, ok := e.Results().Latest(); ok {
			report.Latest = &latest
		}
		return nil
	})
	return report, err
}

// Export renders the candidate's results as a JSON document.
func (s *Service) Export(ctx context.Context, candidateID string) ([]byte, error) {
	var data []byte
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		var err error
		data, err = e.Results().Export(e.now())
		return err
	})
	return data, err
}

// ClearResults removes every stored result for the candidate.
func (s *Service) ClearResults(ctx context.Context, candidateID string) error {
	err := s.Do(ctx, candidateID, func(e *Engine) error {
		e.Results().Clear()
		return nil
	})
	if err == nil {
		s.logger.Info("Assessment results cleared", zap.String("candidate_id", candidateID))
	}
	return err
}
