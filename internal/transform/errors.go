package transform

import (
	"fmt"

	"github.com/jonathan/growth-audit/internal/types"
)

// InsufficientDataError is returned when no meaningful audit can be produced:
// no usable posts or no resolvable identity.
type InsufficientDataError struct {
	Platform types.Platform
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient %s data: %s", e.Platform, e.Reason)
}

// MalformedRecordError describes a single post record that was skipped.
type MalformedRecordError struct {
	Index int
	Cause error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at index %d: %v", e.Index, e.Cause)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}

// ProfileDecodeError is returned when the raw profile record cannot be decoded.
type ProfileDecodeError struct {
	Platform types.Platform
	Cause    error
}

func (e *ProfileDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s profile: %v", e.Platform, e.Cause)
}

func (e *ProfileDecodeError) Unwrap() error {
	return e.Cause
}

// UnsupportedPlatformError is returned for an unknown platform tag.
type UnsupportedPlatformError struct {
	Platform types.Platform
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %q", e.Platform)
}
