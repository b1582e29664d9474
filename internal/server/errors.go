package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/growth-audit/internal/pipeline"
	"github.com/jonathan/growth-audit/internal/schemas"
	"github.com/jonathan/growth-audit/internal/transform"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		notFound       *ErrNotFound
		fieldErrs      validator.ValidationErrors
		insufficient   *transform.InsufficientDataError
		profileErr     *transform.ProfileDecodeError
		unsupportedErr *transform.UnsupportedPlatformError
		schemaErr      *schemas.ValidationError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErrs),
		errors.As(err, &profileErr), errors.As(err, &unsupportedErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pipeline.ErrNoStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
