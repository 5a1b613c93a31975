package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors.
var (
	// ErrInvalidInput marks malformed or incomplete request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal marks an internal failure.
	ErrInternal = errors.New("internal error")
	// ErrRateLimited marks a throttling signal from the completion
	// service. The only retryable failure kind.
	ErrRateLimited = errors.New("rate limited")
	// ErrNotConfigured marks missing completion credentials. Never
	// retried; the orchestrator answers with its static fallback.
	ErrNotConfigured = errors.New("completion service not configured")
)

// DomainError carries a stable code plus a user-safe message alongside
// the wrapped cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (for logs and internal passing).
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates an invalid-input error.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewInternalError creates an internal error. Detail stays wrapped, not
// exposed in the user message.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// NewRateLimitedError wraps a throttling response from the completion
// service, preserving the upstream detail.
func NewRateLimitedError(err error) error {
	return &DomainError{
		Code:    "RATE_LIMITED",
		Message: "completion service is throttling requests",
		Err:     fmt.Errorf("%w: %v", ErrRateLimited, err),
	}
}

// IsInvalidInput reports whether err is an invalid-input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRateLimited reports whether err carries the throttling tag.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotConfigured reports whether err is the missing-credentials tag.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
