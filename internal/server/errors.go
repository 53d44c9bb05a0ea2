package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/skill-match/internal/assessment"
	"github.com/jonathan/skill-match/internal/db"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing candidate or job posting
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ErrUnavailable indicates a route whose backing service is not configured
type ErrUnavailable struct {
	Service string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Service)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr   *ErrValidation
		invalidIDErr    *db.InvalidIDError
		notFoundErr     *ErrNotFound
		dbNotFoundErr   *db.NotFoundError
		preconditionErr *assessment.PreconditionError
		unavailableErr  *ErrUnavailable
		storeErr        *assessment.StoreError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidIDErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &dbNotFoundErr):
		return http.StatusNotFound
	case errors.As(err, &preconditionErr):
		return http.StatusConflict
	case errors.As(err, &unavailableErr), errors.As(err, &storeErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
