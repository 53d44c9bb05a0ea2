package assessment

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jonathan/skill-match/internal/quiz"
	"github.com/jonathan/skill-match/internal/types"
)

// Snapshot is the persisted form of an engine.
type Snapshot struct {
	Session *Session           `json:"session,omitempty"`
	Results []types.TestResult `json:"results"`
}

// Store persists one snapshot per candidate. Load returns nil, nil when the
// candidate has no saved state.
type Store interface {
	Load(ctx context.Context, candidateID string) (*Snapshot, error)
	Save(ctx context.Context, candidateID string, snapshot *Snapshot) error
}

// Snapshot captures the engine's session and results.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		Session: e.Session(),
		Results: e.results.All(),
	}
}

// Restore rebuilds an engine from a snapshot. A nil snapshot yields an idle
// engine with no results.
func Restore(bank *quiz.Bank, snapshot *Snapshot, opts ...Option) *Engine {
	e := NewEngine(bank, opts...)
	if snapshot == nil {
		return e
	}

	if snapshot.Session != nil {
		s := *snapshot.Session
		if s.Answers == nil {
			s.Answers = make(map[int]int)
		}
		e.session = &s
	}
	for _, result := range snapshot.Results {
		e.results.Put(result)
	}
	return e
}

// MemoryStore keeps snapshots in process memory. Snapshots are stored
// encoded so callers never share state with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, candidateID string) (*Snapshot, error) {
	m.mu.RLock()
	raw, ok := m.data[candidateID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, &StoreError{CandidateID: candidateID, Message: "failed to decode snapshot", Cause: err}
	}
	return &snapshot, nil
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, candidateID string, snapshot *Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return &StoreError{CandidateID: candidateID, Message: "failed to encode snapshot", Cause: err}
	}

	m.mu.Lock()
	m.data[candidateID] = raw
	m.mu.Unlock()
	return nil
}
