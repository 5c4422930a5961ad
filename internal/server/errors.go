// Package server provides the HTTP REST API for the job matching engine.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/scoring"
)

// DetailError is one field-level validation failure on the wire.
type DetailError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the 422 response body listing every failed field.
type ValidationResponse struct {
	Detail []DetailError `json:"detail"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var schemaErr *schemas.ValidationError
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.Is(err, scoring.ErrJobNotFound):
		return http.StatusNotFound
	case errors.As(err, &schemaErr), errors.As(err, &fieldErrs):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// detailErrors flattens schema and struct validation errors into wire-level
// field errors. Unrecognized errors map to a single body-level entry.
func detailErrors(err error) []DetailError {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		details := make([]DetailError, 0, len(schemaErr.Errors))
		for _, fe := range schemaErr.Errors {
			details = append(details, DetailError{Field: fe.Field, Message: fe.Message})
		}
		return details
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]DetailError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, DetailError{Field: fe.Namespace(), Message: "failed on the '" + fe.Tag() + "' tag"})
		}
		return details
	}

	return []DetailError{{Field: "(body)", Message: err.Error()}}
}
