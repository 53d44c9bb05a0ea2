package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "skill", Message: "is required"}
	assert.Equal(t, "validation error: skill - is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Entity: "candidate", ID: "abc"}
	assert.Equal(t, "candidate not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrUnavailable(t *testing.T) {
	err := &ErrUnavailable{Service: "database"}
	assert.Equal(t, "database is not configured", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	_, invalidID := db.ParseID("not-a-uuid")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "f", Message: "m"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "InvalidIDError",
			err:      invalidID,
			expected: http.StatusBadRequest,
		},
		{
			name:     "db NotFoundError",
			err:      &db.NotFoundError{Entity: "candidate", ID: uuid.New()},
			expected: http.StatusNotFound,
		},
		{
			name:     "PreconditionError",
			err:      &assessment.PreconditionError{Operation: "submit test", Message: "not every question is answered"},
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped PreconditionError",
			err:      fmt.Errorf("handler: %w", &assessment.PreconditionError{Operation: "answer question"}),
			expected: http.StatusConflict,
		},
		{
			name:     "StoreError",
			err:      &assessment.StoreError{CandidateID: "c1", Message: "failed to load", Cause: errors.New("dial tcp")},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
