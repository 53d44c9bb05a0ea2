package assessment

import (
	"fmt"
	"strings"
)

// PreconditionError reports an operation attempted in a state that does not
// allow it. The engine is left unchanged.
type PreconditionError struct {
	Operation string
	Message   string
	// Missing lists unanswered question indices when finalizing too early.
	Missing []int
}

func (e *PreconditionError) Error() string {
	if len(e.Missing) > 0 {
		indices := make([]string, len(e.Missing))
		for i, m := range e.Missing {
			indices[i] = fmt.Sprint(m)
		}
		return fmt.Sprintf("cannot %s: %s (unanswered: %s)", e.Operation, e.Message, strings.Join(indices, ", "))
	}
	return fmt.Sprintf("cannot %s: %s", e.Operation, e.Message)
}

// StoreError reports a failure to load or save assessment state.
type StoreError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *StoreError) Error() string {
	if e.CandidateID == "" {
		return fmt.Sprintf("assessment store error: %s: %v", e.Message, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("assessment store error for %s: %s: %v", e.CandidateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("assessment store error for %s: %s", e.CandidateID, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
