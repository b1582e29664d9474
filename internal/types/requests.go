package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AuditRequest is one platform-tagged scrape result submitted for auditing.
type AuditRequest struct {
	Platform Platform          `json:"platform" validate:"required,oneof=linkedin twitter"`
	Profile  json.RawMessage   `json:"profile,omitempty"`
	Posts    []json.RawMessage `json:"posts"`
	// Fallback asks for a labeled placeholder audit when the scrape is too thin to score.
	Fallback bool `json:"fallback,omitempty"`
}

// CompareRequest holds your scrape and a competitor's.
type CompareRequest struct {
	Yours  AuditRequest `json:"yours" validate:"required"`
	Theirs AuditRequest `json:"theirs" validate:"required"`
}

// CompareResponse is the result of a comparison.
type CompareResponse struct {
	Yours  *ProfileAudit `json:"yours"`
	Theirs *ProfileAudit `json:"theirs"`
	Gap    *GapAnalysis  `json:"gap"`
}

// Validate validates the AuditRequest using the validator.
func (r *AuditRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
