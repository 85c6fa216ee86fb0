package common

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("requested resource not found")
	ErrInvalidIdentifier = errors.New("malformed identifier")
	ErrInvalidOption     = errors.New("answer option index out of range")
	ErrEmptyQuiz         = errors.New("quiz has no questions")
	ErrAlreadyCompleted  = errors.New("attempt already completed")
	ErrUnknownReference  = errors.New("reference to unknown catalog entity")

	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("resource conflict")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrInvalidOption),
		errors.Is(err, ErrEmptyQuiz),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyCompleted), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
