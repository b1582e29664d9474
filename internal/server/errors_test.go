package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/growth-audit/internal/pipeline"
	"github.com/jonathan/growth-audit/internal/schemas"
	"github.com/jonathan/growth-audit/internal/transform"
	"github.com/jonathan/growth-audit/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "platform", Message: "required"}
	assert.Equal(t, "validation error: platform - required", err.Error())
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "snapshot", ID: "abc"}
	assert.Equal(t, "snapshot not found: abc", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest},
		{"wrapped validator", fmt.Errorf("invalid audit request: %w", validator.ValidationErrors{}), http.StatusBadRequest},
		{"unsupported platform", &transform.UnsupportedPlatformError{Platform: "myspace"}, http.StatusBadRequest},
		{"bad profile", &transform.ProfileDecodeError{Platform: types.PlatformLinkedIn, Cause: errors.New("eof")}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "posts", Message: "Invalid type"}}}, http.StatusBadRequest},
		{"schema load", &schemas.SchemaLoadError{Path: "x", Message: "missing"}, http.StatusInternalServerError},
		{"not found", &ErrNotFound{Resource: "snapshot", ID: "x"}, http.StatusNotFound},
		{"insufficient", fmt.Errorf("their audit failed: %w", &transform.InsufficientDataError{Platform: types.PlatformTwitter, Reason: "no posts"}), http.StatusUnprocessableEntity},
		{"no store", pipeline.ErrNoStore, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
